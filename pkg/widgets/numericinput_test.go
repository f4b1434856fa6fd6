package widgets

import (
	"errors"
	"testing"

	"github.com/dangdiep/shinyWidgets/pkg/vdom"
)

func TestNumericInputIcon(t *testing.T) {
	node, err := NumericInputIcon("amount", 25,
		NumericLabel("Amount"),
		NumericMin(0),
		NumericMax(100),
		NumericStep(0.5),
		NumericSize("lg"),
		NumericWidth(240),
		NumericAddon(Icon(vdom.Text("$"))),
	)
	if err != nil {
		t.Fatal(err)
	}
	doc := renderDoc(t, node)

	field := doc.Find("input#amount")
	if field.Length() != 1 {
		t.Fatalf("fields = %d, want 1", field.Length())
	}
	if typ, _ := field.Attr("type"); typ != "number" {
		t.Errorf(`field type = %q, want "number"`, typ)
	}
	if !field.HasClass("form-control") {
		t.Error("field missing form-control class")
	}

	// Bounds render exactly as given, without float artifacts.
	for attr, want := range map[string]string{
		"value": "25",
		"min":   "0",
		"max":   "100",
		"step":  "0.5",
	} {
		if got, _ := field.Attr(attr); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}

	if !doc.Find("div.input-group").HasClass("input-group-lg") {
		t.Error("group missing size class input-group-lg")
	}
	if style, _ := doc.Find("div.form-group").Attr("style"); style != "width: 240px;" {
		t.Errorf("container style = %q", style)
	}
}

func TestNumericInputIconValueAlwaysPresent(t *testing.T) {
	node, err := NumericInputIcon("n", 0)
	if err != nil {
		t.Fatal(err)
	}
	doc := renderDoc(t, node)

	field := doc.Find("input#n")
	if v, ok := field.Attr("value"); !ok || v != "0" {
		t.Errorf("value = %q (present=%v), want \"0\"", v, ok)
	}
	for _, attr := range []string{"min", "max", "step"} {
		if _, ok := field.Attr(attr); ok {
			t.Errorf("%s should be absent when unset", attr)
		}
	}
}

func TestNumericInputIconRestore(t *testing.T) {
	// JSON-decoded numbers arrive as float64; numeric strings are parsed.
	for name, stored := range map[string]any{
		"float":          float64(42),
		"numeric string": "42",
	} {
		t.Run(name, func(t *testing.T) {
			node, err := NumericInputIcon("n", 7, NumericRestore(fakeRestorer{"n": stored}))
			if err != nil {
				t.Fatal(err)
			}
			doc := renderDoc(t, node)
			if v, _ := doc.Find("input#n").Attr("value"); v != "42" {
				t.Errorf("value = %q, want \"42\"", v)
			}
		})
	}

	// Unparseable stored values fall back to the default.
	node, err := NumericInputIcon("n", 7, NumericRestore(fakeRestorer{"n": "not a number"}))
	if err != nil {
		t.Fatal(err)
	}
	doc := renderDoc(t, node)
	if v, _ := doc.Find("input#n").Attr("value"); v != "7" {
		t.Errorf("value = %q, want default \"7\"", v)
	}
}

func TestNumericInputIconErrors(t *testing.T) {
	if _, err := NumericInputIcon("n", 1, NumericSize("xl")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad size err = %v, want ErrInvalidArgument", err)
	}
	if _, err := NumericInputIcon("n", 1, NumericWidth("wide")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad width err = %v, want ErrInvalidArgument", err)
	}
}
