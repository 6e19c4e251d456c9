package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

// testSpec is a ValidatingSpec whose validity is set by the test.
type testSpec struct {
	Name  string `json:"name"`
	valid bool
}

func (s *testSpec) Validate() error {
	if !s.valid {
		return fmt.Errorf("spec is invalid")
	}
	return nil
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset   Asset[*testSpec]
		expErrs []string
	}{
		"valid asset": {
			asset: Asset[*testSpec]{Version: 1, Identifier: "dusty-hall", Spec: &testSpec{valid: true}},
		},
		"version not set": {
			asset:   Asset[*testSpec]{Identifier: "hall", Spec: &testSpec{valid: true}},
			expErrs: []string{"version must be set"},
		},
		"empty identifier": {
			asset:   Asset[*testSpec]{Version: 1, Spec: &testSpec{valid: true}},
			expErrs: []string{"id must be set"},
		},
		"identifier with spaces": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "dusty hall", Spec: &testSpec{valid: true}},
			expErrs: []string{`id "dusty hall" must be alphanumeric`},
		},
		"identifier with underscore": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "dusty_hall", Spec: &testSpec{valid: true}},
			expErrs: []string{"must be alphanumeric"},
		},
		"missing spec": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "hall"},
			expErrs: []string{"spec must be set"},
		},
		"invalid spec": {
			asset:   Asset[*testSpec]{Version: 1, Identifier: "hall", Spec: &testSpec{}},
			expErrs: []string{"spec is invalid"},
		},
		"multiple errors": {
			asset: Asset[*testSpec]{Spec: &testSpec{}},
			expErrs: []string{
				"version must be set",
				"id must be set",
				"spec is invalid",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()

			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected errors %v, got nil", tt.expErrs)
			}
			for _, exp := range tt.expErrs {
				if !strings.Contains(err.Error(), exp) {
					t.Errorf("error %q does not contain %q", err.Error(), exp)
				}
			}
		})
	}
}

type mapStorer map[Identifier]*testSpec

func (m mapStorer) Get(id Identifier) *testSpec { return m[id] }

func (m mapStorer) GetAll() map[Identifier]*testSpec { return m }

func TestSmartIdentifier_Resolve(t *testing.T) {
	sword := &testSpec{Name: "sword", valid: true}
	st := mapStorer{"sword": sword}

	tests := map[string]struct {
		key    Identifier
		exp    *testSpec
		expErr string
	}{
		"found": {
			key: "sword",
			exp: sword,
		},
		"missing": {
			key:    "shield",
			expErr: `testSpec "shield" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id := NewSmartIdentifier[*testSpec](tt.key)
			err := id.Resolve(st)

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.Value() != tt.exp {
				t.Errorf("resolved = %v, want %v", id.Value(), tt.exp)
			}
			testutil.AssertEqual(t, "key", id.Key(), tt.key)
		})
	}
}

func TestSmartIdentifier_JSON(t *testing.T) {
	var ids []SmartIdentifier[*testSpec]
	err := json.Unmarshal([]byte(`["sword","lamp"]`), &ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "count", len(ids), 2)
	testutil.AssertEqual(t, "first", ids[0].Key(), Identifier("sword"))
	testutil.AssertEqual(t, "second", ids[1].Key(), Identifier("lamp"))

	out, err := json.Marshal(ids[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "marshalled", string(out), `"lamp"`)
}

func TestSmartIdentifier_Validate(t *testing.T) {
	var empty SmartIdentifier[*testSpec]
	testutil.AssertErrorContains(t, empty.Validate(), "testSpec identifier is required")

	set := NewSmartIdentifier[*testSpec]("sword")
	if err := set.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
