package lang

import "testing"

const docPrologue = "<!DOCTYPE html>\n<html>\n<head>\n" +
	"<meta charset=\"UTF-8\">\n<title>LOLCODE Markdown</title>\n" +
	"</head>\n<body>\n"

const docEpilogue = "</body>\n</html>"

func generateSource(t *testing.T, source string) string {
	t.Helper()

	root, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if errs := Validate(root); len(errs) != 0 {
		t.Fatalf("Validate found errors: %v", errs)
	}

	return Generate(root)
}

func TestGenerate_EmptyProgram(t *testing.T) {
	got := generateSource(t, "#HAI\n#KTHXBYE\n")

	want := docPrologue + docEpilogue
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestGenerate_FullDocument(t *testing.T) {
	source := "#HAI\n" +
		"#MAEK HEAD\n" +
		"#GIMMEH TITLE My Page #MKAY\n" +
		"#OIC\n" +
		"#I HAZ pet\n" +
		"#IT IZ 42 dogs #MKAY\n" +
		"#MAEK PARAGRAF\n" +
		"hello #LEMME SEE pet #MKAY\n" +
		"#GIMMEH NEWLINE\n" +
		"#GIMMEH BOLD loud #MKAY\n" +
		"#OIC\n" +
		"#MAEK LIST\n" +
		"#GIMMEH ITEM one #MKAY\n" +
		"#GIMMEH ITEM two #MKAY\n" +
		"#OIC\n" +
		"#KTHXBYE\n"

	want := docPrologue +
		"<h1>My Page</h1>\n" +
		"<p>\nhello 42 dogs<br>\n<b>loud </b></p>\n" +
		"<ul>\n<li>one </li>\n<li>two </li>\n</ul>\n" +
		docEpilogue

	if got := generateSource(t, source); got != want {
		t.Errorf("HTML mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_MediaTags(t *testing.T) {
	source := "#HAI\n#MAEK PARAGRAF\n" +
		"#GIMMEH SOUNDZ http://x.com/a.mp3 #MKAY\n" +
		"#GIMMEH VIDZ http://x.com/b.mp4 #MKAY\n" +
		"#OIC\n#KTHXBYE\n"

	want := docPrologue +
		"<p>\n" +
		"<audio controls src=\"http://x.com/a.mp3\"></audio>\n" +
		"<video controls src=\"http://x.com/b.mp4\"></video>\n" +
		"</p>\n" +
		docEpilogue

	if got := generateSource(t, source); got != want {
		t.Errorf("HTML mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_ItalicsWrapsInline(t *testing.T) {
	got := generateSource(t,
		"#HAI\n#MAEK PARAGRAF\n#GIMMEH ITALICS soft words #MKAY\n#OIC\n#KTHXBYE\n")

	want := docPrologue + "<p>\n<i>soft words </i></p>\n" + docEpilogue
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestGenerate_UnresolvedReferencePlaceholder(t *testing.T) {
	root, err := Parse("#HAI\n#MAEK PARAGRAF\n#LEMME SEE ghost #MKAY\n#OIC\n#KTHXBYE\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := docPrologue + "<p>\n[undefined: ghost]</p>\n" + docEpilogue
	if got := Generate(root); got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	root, err := Parse("#HAI\n#I HAZ x\n#IT IZ hi #MKAY\n" +
		"#MAEK PARAGRAF\n#LEMME SEE x #MKAY\n#OIC\n#KTHXBYE\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	first := Generate(root)

	for range 3 {
		if got := Generate(root); got != first {
			t.Fatalf("repeat generation differs: %q vs %q", got, first)
		}
	}
}
