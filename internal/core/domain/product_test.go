package domain

import (
	"encoding/json"
	"testing"
)

func TestProductID_UnmarshalKeepsKind(t *testing.T) {
	var p Product
	if err := json.Unmarshal([]byte(`{"id":1,"name":"A","price":10}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.ID.IsNumber() {
		t.Fatalf("expected number id")
	}
	if p.ID.String() != "1" {
		t.Fatalf("expected \"1\", got %q", p.ID.String())
	}

	if err := json.Unmarshal([]byte(`{"id":"1"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID.IsNumber() || p.ID.String() != "1" {
		t.Fatalf("expected string id \"1\", got %+v", p.ID)
	}
}

func TestProductID_EqualIsStrict(t *testing.T) {
	if NumberID(1).Equal(StringID("1")) {
		t.Fatalf("number 1 and string \"1\" must differ")
	}
	if !NumberID(1).Equal(NumberID(1.0)) {
		t.Fatalf("same number must be equal")
	}
	if !StringID("abc").Equal(StringID("abc")) {
		t.Fatalf("same string must be equal")
	}
}

func TestProductID_NumberFormatting(t *testing.T) {
	cases := map[string]string{
		`1`:                     "1",
		`1.0`:                   "1",
		`2.50`:                  "2.5",
		`-3`:                    "-3",
		`1e3`:                   "1000",
		`-0`:                    "0",
		`0.0`:                   "0",
		`1e21`:                  "1e+21",
		`1.5e22`:                "1.5e+22",
		`0.0000001`:             "1e-7",
		`-2.5e-8`:               "-2.5e-8",
		`0.000001`:              "0.000001",
		`123456789012345680000`: "123456789012345680000",
	}
	for in, want := range cases {
		var id ProductID
		if err := id.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if id.String() != want {
			t.Fatalf("%s: expected %q, got %q", in, want, id.String())
		}
	}
}

func TestProductID_MarshalRoundTrip(t *testing.T) {
	in := []Product{
		{ID: NumberID(7), Name: "Seven", Price: 7.5, Category: "n"},
		{ID: StringID("sku-1"), Name: "Sku", Price: 1, Category: "s"},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out []Product
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range in {
		if !in[i].ID.Equal(out[i].ID) || in[i].Name != out[i].Name || in[i].Price != out[i].Price {
			t.Fatalf("record %d changed: %+v -> %+v", i, in[i], out[i])
		}
	}
}

func TestProductID_RejectsObjects(t *testing.T) {
	var id ProductID
	if err := id.UnmarshalJSON([]byte(`{"a":1}`)); err == nil {
		t.Fatalf("expected error for object id")
	}
	if err := id.UnmarshalJSON([]byte(`null`)); err != nil || !id.IsZero() {
		t.Fatalf("null must decode to zero id, got %+v err=%v", id, err)
	}
}

func TestProductID_IsBlank(t *testing.T) {
	if !(ProductID{}).IsBlank() || !StringID("").IsBlank() {
		t.Fatalf("absent and empty string ids must be blank")
	}
	if StringID("0").IsBlank() || NumberID(0).IsBlank() {
		t.Fatalf("\"0\" and 0 are real ids")
	}
}

func TestReceipt_FormattedTotal(t *testing.T) {
	r := Receipt{Total: 10}
	if r.FormattedTotal() != "10.00" {
		t.Fatalf("expected 10.00, got %s", r.FormattedTotal())
	}
	r = Receipt{Total: 0.1 + 0.2}
	if r.FormattedTotal() != "0.30" {
		t.Fatalf("expected 0.30, got %s", r.FormattedTotal())
	}
}
