package markup

import "testing"

const sampleDoc = `<?xml version="1.0"?>
<xml>
	<room num="0" floor="stone" wall="brick">
.|
|.</room>
	<room num="1" floor="wood"><![CDATA[..]]></room>
	<note>ignored</note>
</xml>`

func TestParseElements(t *testing.T) {
	doc, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Name != "xml" {
		t.Fatalf("Expected root <xml>, got %+v", root)
	}

	rooms := root.Elements("room")
	if len(rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(rooms))
	}

	if rooms[0].Attr("num") != "0" || rooms[1].Attr("num") != "1" {
		t.Errorf("Rooms out of document order: %q, %q", rooms[0].Attr("num"), rooms[1].Attr("num"))
	}
	if got := rooms[0].Attr("wall"); got != "brick" {
		t.Errorf("Expected wall 'brick', got %q", got)
	}
	if _, ok := rooms[1].LookupAttr("wall"); ok {
		t.Error("Room 1 should not have a wall attribute")
	}
	if notes := root.Elements("note"); len(notes) != 1 {
		t.Errorf("Expected 1 <note> element, got %d", len(notes))
	}
}

func TestTextKeepsWhitespace(t *testing.T) {
	doc, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	rooms := doc.Root().Elements("room")

	if got := rooms[0].Text(); got != "\n.|\n|." {
		t.Errorf("Expected raw room text, got %q", got)
	}
	if got := rooms[1].Text(); got != ".." {
		t.Errorf("Expected CDATA text '..', got %q", got)
	}
}

func TestTextExcludesChildren(t *testing.T) {
	doc, err := ParseString(`<a>x<b>y</b>z</a>`)
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	if got := doc.Root().Text(); got != "xz" {
		t.Errorf("Expected 'xz', got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unclosed", "<xml><room>"},
		{"mismatched", "<xml></room>"},
	}

	for _, tt := range tests {
		if _, err := ParseString(tt.input); err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		}
	}
}
