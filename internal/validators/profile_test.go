// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeForm() ProfileForm {
	return ProfileForm{
		Values: map[string]string{
			FieldFirstName:       "Maria",
			FieldLastName:        "Gonzalez",
			FieldDateOfBirth:     "1987-04-12",
			FieldCountryOfBirth:  "Mexico",
			FieldPrimaryLanguage: "Spanish",
		},
		SSNMasked:     "XXX-XX-6789",
		TermsAccepted: true,
	}
}

func TestInvalidFields_CompleteForm(t *testing.T) {
	v := NewProfileValidator()

	invalid := v.InvalidFields(completeForm())

	assert.Empty(t, invalid)
}

func TestInvalidFields_OrderedByPolicy(t *testing.T) {
	v := NewProfileValidator()

	form := completeForm()
	form.Values[FieldFirstName] = ""
	form.Values[FieldPrimaryLanguage] = "  "
	form.TermsAccepted = false

	invalid := v.InvalidFields(form)

	// Policy order, not alphabetical: the first entry is the field the UI
	// scrolls to.
	assert.Equal(t, []string{FieldFirstName, FieldPrimaryLanguage, FieldTerms}, invalid)
}

func TestInvalidFields_SSN(t *testing.T) {
	tests := []struct {
		name      string
		ssn       string
		ssnMasked string
		wantSSN   bool
	}{
		{"on file, untouched", "", "XXX-XX-6789", false},
		{"typed valid", "123-45-6789", "", false},
		{"typed valid over existing", "123-45-6789", "XXX-XX-6789", false},
		{"nothing on file, nothing typed", "", "", true},
		{"typed too short", "123-45-678", "XXX-XX-6789", true},
		{"typed without dashes", "123456789", "", true},
		{"typed with letters", "123-45-67ab", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewProfileValidator()
			form := completeForm()
			form.SSN = tt.ssn
			form.SSNMasked = tt.ssnMasked

			invalid := v.InvalidFields(form)

			if tt.wantSSN {
				assert.Contains(t, invalid, FieldSSN)
			} else {
				assert.NotContains(t, invalid, FieldSSN)
			}
		})
	}
}

func TestValidSSN(t *testing.T) {
	assert.True(t, ValidSSN("123-45-6789"))
	assert.False(t, ValidSSN("123-45-678"))
	assert.False(t, ValidSSN("123456789"))
	assert.False(t, ValidSSN("12a-45-6789"))
	assert.False(t, ValidSSN(" 123-45-6789"))
}
