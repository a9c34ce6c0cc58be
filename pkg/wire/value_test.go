package wire

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": {"b": true, "a": null}, "mid": ["x", 2.5]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	obj, ok := v.AsObject()
	if !ok {
		t.Fatalf("expected object, got %s", v.Kind())
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	got := v.String()
	want := `{"zeta":1,"alpha":{"b":true,"a":null},"mid":["x",2.5]}`
	if got != want {
		t.Fatalf("encode mismatch\nwant %s\ngot  %s", want, got)
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	for _, input := range []string{``, `{`, `{} {}`, `[1,]`, `{"a" 1}`} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestLargeIntegersSurviveRoundTrip(t *testing.T) {
	const payload = `{"id":9007199254740993}`
	v := MustParse(payload)
	if got := v.String(); got != payload {
		t.Fatalf("expected %s, got %s", payload, got)
	}
	obj, _ := v.AsObject()
	id, _ := obj.Get("id")
	n, ok := id.AsInt()
	if !ok || n != 9007199254740993 {
		t.Fatalf("expected exact integer, got %d (ok=%v)", n, ok)
	}
}

func TestEqual(t *testing.T) {
	a := MustParse(`{"a": 1, "b": [true, "x"]}`)
	b := MustParse(`{"b": [true, "x"], "a": 1.0}`)
	if !a.Equal(b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}
	if !b.Equal(a) {
		t.Fatalf("equality must be symmetric")
	}

	c := MustParse(`{"a": 1, "b": ["x", true]}`)
	if a.Equal(c) {
		t.Fatalf("array order must matter")
	}
	if Null().Equal(String("")) {
		t.Fatalf("null must differ from empty string")
	}
	if !Null().Equal(Value{}) {
		t.Fatalf("zero value must be null")
	}
}

func TestAsIntIsExact(t *testing.T) {
	integral := map[string]int64{
		"3":                   3,
		"3.0":                 3,
		"1e3":                 1000,
		"-2.50e1":             -25,
		"9223372036854775807": 9223372036854775807,
		"0e10":                0,
	}
	for lit, want := range integral {
		n, ok := MustParse(lit).AsInt()
		if !ok || n != want {
			t.Fatalf("AsInt(%s) = %d, %v; want %d", lit, n, ok, want)
		}
	}

	for _, lit := range []string{
		"1.00000000000000000001",
		"9007199254740993.5",
		"9223372036854775808",
		"1e-1",
		"1e999999999",
	} {
		if n, ok := MustParse(lit).AsInt(); ok {
			t.Fatalf("AsInt(%s) must fail, got %d", lit, n)
		}
	}
}

func TestEqualNumbersAreExact(t *testing.T) {
	if MustParse("1.00000000000000000001").Equal(MustParse("1")) {
		t.Fatalf("distinct literals must not compare equal")
	}
	if MustParse("9007199254740993").Equal(MustParse("9007199254740992")) {
		t.Fatalf("integers beyond float precision must not compare equal")
	}
	if !MustParse("1.50").Equal(MustParse("15e-1")) {
		t.Fatalf("same value in different notation must compare equal")
	}
	if MustParse("1e999999999").Equal(MustParse("1e999999998")) {
		t.Fatalf("out-of-range exponents only match literally")
	}
}

func TestObjectSetKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Int(1))
	obj.Set("b", Int(2))
	obj.Set("a", Int(3))
	obj.Delete("missing")

	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := ObjectValue(obj).String(); got != `{"a":3,"b":2}` {
		t.Fatalf("unexpected encoding %s", got)
	}

	obj.Delete("a")
	if got := ObjectValue(obj).String(); got != `{"b":2}` {
		t.Fatalf("unexpected encoding after delete %s", got)
	}
}

func TestObjectValueIsolatedFromSource(t *testing.T) {
	obj := NewObject()
	obj.Set("a", String("x"))
	v := ObjectValue(obj)
	obj.Set("b", String("y"))

	if v.Len() != 1 {
		t.Fatalf("value must not observe later mutations, got %s", v)
	}

	copied, _ := v.AsObject()
	copied.Set("c", Null())
	if v.Len() != 1 {
		t.Fatalf("AsObject must return a copy, got %s", v)
	}
}

func TestNilObjectIsEmpty(t *testing.T) {
	var obj *Object
	if obj.Len() != 0 || obj.Has("x") {
		t.Fatalf("nil object must be empty")
	}
	if !obj.Equal(NewObject()) {
		t.Fatalf("nil object must equal an empty object")
	}
	if got := ObjectValue(obj).String(); got != "{}" {
		t.Fatalf("expected {}, got %s", got)
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"b":     []any{1, "two", nil},
		"a":     true,
		"c":     map[string]string{"k": "v"},
		"float": 1.5,
	})
	if err != nil {
		t.Fatalf("from any: %v", err)
	}
	want := `{"a":true,"b":[1,"two",null],"c":{"k":"v"},"float":1.5}`
	if got := v.String(); got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}

	if _, err := FromAny(make(chan int)); err == nil {
		t.Fatalf("expected error for channel")
	}
	if _, err := FromAny(map[string]any{"x": func() {}}); err == nil {
		t.Fatalf("expected error for nested func")
	}
}

func TestInterfaceRoundTrip(t *testing.T) {
	v := MustParse(`{"a":[1,"x",false,null],"b":{"c":"d"}}`)
	back, err := FromAny(v.Interface())
	if err != nil {
		t.Fatalf("from any: %v", err)
	}
	if !back.Equal(v) {
		t.Fatalf("expected %s, got %s", v, back)
	}
}

func TestNumberValidation(t *testing.T) {
	if _, err := Number(json.Number("Inf")); err == nil {
		t.Fatalf("expected Inf to be rejected")
	}
	if _, err := Number(json.Number("01")); err == nil {
		t.Fatalf("expected leading zero to be rejected")
	}
	if _, err := Number(json.Number("-1.5e10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAsInt(t *testing.T) {
	cases := map[string]bool{
		"3":                    true,
		"3.0":                  true,
		"1e3":                  true,
		"3.5":                  false,
		"99999999999999999999": false,
	}
	for literal, want := range cases {
		v, err := Number(json.Number(literal))
		if err != nil {
			t.Fatalf("number %s: %v", literal, err)
		}
		if _, ok := v.AsInt(); ok != want {
			t.Fatalf("AsInt(%s) = %v, want %v", literal, ok, want)
		}
	}
}

func TestStringEncodingDoesNotEscapeHTML(t *testing.T) {
	if got := String("a<b>&c").String(); got != `"a<b>&c"` {
		t.Fatalf("unexpected encoding %s", got)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var payload struct {
		Body Value `json:"body"`
	}
	if err := json.Unmarshal([]byte(`{"body":{"y":1,"x":2}}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := payload.Body.String(); got != `{"y":1,"x":2}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	v := MustParse(`{"name":"polaris","count":3,"ratio":0.5,"flags":[true,false],"quoted":"true","none":null}`)

	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	text := string(out)
	if strings.Index(text, "name:") > strings.Index(text, "count:") {
		t.Fatalf("expected key order to be preserved:\n%s", text)
	}

	back, err := ParseYAML(out)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if !back.Equal(v) {
		t.Fatalf("yaml round trip mismatch\nwant %s\ngot  %s", v, back)
	}
	quoted, _ := back.AsObject()
	if q, _ := quoted.Get("quoted"); q.Kind() != KindString {
		t.Fatalf("expected quoted to stay a string, got %s", q.Kind())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := ParseYAML(nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := ParseYAML([]byte("? [a, b]\n: c\n")); err == nil {
		t.Fatalf("expected error for non-scalar key")
	}
}
