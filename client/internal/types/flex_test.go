package types

import (
	"encoding/json"
	"testing"
)

func TestIDDecodesNumbersAndStrings(t *testing.T) {
	t.Parallel()
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 12, "b": "u-9", "c": null}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.A != "12" || v.B != "u-9" || v.C != "" {
		t.Fatalf("unexpected ids: %+v", v)
	}
	out, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}{A: "12", B: "u-9"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":12,"b":"u-9"}` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestIDMarshalKeepsNonCanonicalDigitsQuoted(t *testing.T) {
	t.Parallel()
	cases := map[ID]string{
		"12":  `12`,
		"-3":  `-3`,
		"007": `"007"`,
		"+5":  `"+5"`,
		"-0":  `"-0"`,
		"u-9": `"u-9"`,
		"":    `null`,
	}
	for id, want := range cases {
		out, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("%q: %v", id, err)
		}
		if string(out) != want {
			t.Fatalf("%q: marshal = %s, want %s", id, out, want)
		}
		if !json.Valid(out) {
			t.Fatalf("%q: invalid json %s", id, out)
		}
		var back ID
		if err := json.Unmarshal(out, &back); err != nil {
			t.Fatalf("%q: unmarshal: %v", id, err)
		}
		if back != id {
			t.Fatalf("%q: round trip = %q", id, back)
		}
	}
}

func TestAmountAndFlag(t *testing.T) {
	t.Parallel()
	var v struct {
		P1 Amount `json:"p1"`
		P2 Amount `json:"p2"`
		P3 Amount `json:"p3"`
		F1 Flag   `json:"f1"`
		F2 Flag   `json:"f2"`
		F3 Flag   `json:"f3"`
	}
	raw := `{"p1": "499.00", "p2": 12.5, "p3": "n/a", "f1": 1, "f2": "true", "f3": 0}`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.P1 != 499 || v.P2 != 12.5 || v.P3 != 0 {
		t.Fatalf("amounts: %+v", v)
	}
	if !v.F1 || !v.F2 || v.F3 {
		t.Fatalf("flags: %+v", v)
	}
}

func TestStringListVariants(t *testing.T) {
	t.Parallel()
	cases := map[string][]string{
		`["a","b"]`:          {"a", "b"},
		`"[\"x\",\"y\"]"`:    {"x", "y"},
		`"reading, travel"`:  {"reading", "travel"},
		`""`:                 nil,
		`null`:               nil,
		`"[not json"`:        nil,
		`[1, "two", true]`:   {"1", "two", "true"},
	}
	for in, want := range cases {
		var l StringList
		if err := json.Unmarshal([]byte(in), &l); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if len(l) != len(want) {
			t.Fatalf("%s: got %v want %v", in, l, want)
		}
		for i := range want {
			if l[i] != want[i] {
				t.Fatalf("%s: got %v want %v", in, l, want)
			}
		}
	}
}

func TestUserDocumentsFromStrings(t *testing.T) {
	t.Parallel()
	raw := `{
		"id": 3,
		"first_name": "Ann",
		"family_details": "{\"father\":\"Ravi\",\"brothers\":2}",
		"partner_preference": {"basic": {"ageRange": "25-30"}, "location": {"country": "India"}},
		"hobbies": "music,yoga"
	}`
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.EntityID() != "3" || u.FamilyDetails.Father != "Ravi" || u.FamilyDetails.Brothers != "2" {
		t.Fatalf("family details: %+v", u.FamilyDetails)
	}
	if u.PartnerPreference.Basic.AgeRange != "25-30" || u.PartnerPreference.Location.Country != "India" {
		t.Fatalf("partner preference: %+v", u.PartnerPreference)
	}
	if len(u.Hobbies) != 2 || u.FullName() != "Ann" {
		t.Fatalf("user: %+v", u)
	}
}

func TestMalformedDocumentDoesNotFailUser(t *testing.T) {
	t.Parallel()
	var u User
	if err := json.Unmarshal([]byte(`{"id": 1, "family_details": "{broken", "partner_preference": 5}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "1" || u.FamilyDetails != (FamilyDetails{}) || !u.PartnerPreference.IsZero() {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestConversationMessagesFromString(t *testing.T) {
	t.Parallel()
	raw := `[
		{"id": 1, "user1_id": 1, "user2_id": 2, "messages": "[{\"sender_id\":1,\"content\":\"hi\",\"sent_at\":\"2024-01-01T10:00:00Z\"}]"},
		{"id": 2, "user1_id": 1, "user2_id": 3, "messages": [{"sender_id": 3, "content": "yo", "sent_at": "2024-01-01T11:00:00Z"}]},
		{"id": 3, "user1_id": 2, "user2_id": 3, "messages": "garbage"}
	]`
	var cs []Conversation
	if err := json.Unmarshal([]byte(raw), &cs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(cs[0].Messages) != 1 || cs[0].Messages[0].Content != "hi" {
		t.Fatalf("string messages: %+v", cs[0].Messages)
	}
	if len(cs[1].Messages) != 1 || cs[1].Messages[0].SenderID != "3" {
		t.Fatalf("array messages: %+v", cs[1].Messages)
	}
	if len(cs[2].Messages) != 0 {
		t.Fatalf("garbage messages: %+v", cs[2].Messages)
	}
}

func TestPayloadFromEntities(t *testing.T) {
	t.Parallel()
	p := PlanPayloadFrom(Plan{Name: "Gold", Price: 10, Status: "active", Services: []PlanServiceRef{{ID: "4", ServiceCount: 3}}})
	if len(p.Services) != 1 || p.Services[0].ID != "4" || p.Services[0].Count != 3 {
		t.Fatalf("plan payload: %+v", p)
	}
	s := SubscriptionPayloadFrom(Subscription{UserID: "7", StartDate: "2024-03-01T00:00:00.000Z", EndDate: "soon"})
	if s.StartDate != "2024-03-01" || s.EndDate != "soon" || s.Features == nil {
		t.Fatalf("subscription payload: %+v", s)
	}
}
