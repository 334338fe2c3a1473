package rag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ContentRequest
		want ContentRequest
	}{
		{
			name: "trims and case-folds",
			in: ContentRequest{
				Subject:  "  maths ",
				Topic:    " Fractions ",
				Grade:    " Grade 5 ",
				Disorder: " Dyscalculia ",
			},
			want: ContentRequest{
				Subject:    "Maths",
				Topic:      "Fractions",
				Grade:      "grade 5",
				Disorder:   "dyscalculia",
				ExecSkills: []string{},
			},
		},
		{
			name: "canonicalizes subject casing",
			in:   ContentRequest{Subject: "SCIENCE"},
			want: ContentRequest{Subject: "Science", ExecSkills: []string{}},
		},
		{
			name: "unknown subject kept as-is",
			in:   ContentRequest{Subject: "History"},
			want: ContentRequest{Subject: "History", ExecSkills: []string{}},
		},
		{
			name: "drops blank exec skills",
			in:   ContentRequest{ExecSkills: []string{" Task Initiation ", "", "  "}},
			want: ContentRequest{ExecSkills: []string{"Task Initiation"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize()
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestResolveExecSkills(t *testing.T) {
	t.Run("explicit skills win over disorder lookup", func(t *testing.T) {
		req := ContentRequest{Disorder: "dyslexia", ExecSkills: []string{"Flexibility"}}
		err := req.ResolveExecSkills()
		assert.NoError(t, err)
		assert.Equal(t, []string{"Flexibility"}, req.ExecSkills)
	})

	t.Run("known disorder fills skills", func(t *testing.T) {
		req := ContentRequest{Disorder: "dyscalculia"}
		err := req.ResolveExecSkills()
		assert.NoError(t, err)
		assert.Contains(t, req.ExecSkills, "Enhancing Working Memory")
		assert.Len(t, req.ExecSkills, 4)
	})

	t.Run("no disorder and no skills is fine", func(t *testing.T) {
		req := ContentRequest{}
		assert.NoError(t, req.ResolveExecSkills())
		assert.Empty(t, req.ExecSkills)
	})

	t.Run("unknown disorder with no skills fails validation", func(t *testing.T) {
		req := ContentRequest{Disorder: "unknown"}
		err := req.ResolveExecSkills()

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "disorder", verr.Field)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       ContentRequest
		wantField string
	}{
		{
			name: "valid request",
			req:  ContentRequest{Subject: "Maths", Topic: "Fractions", Grade: "5"},
		},
		{
			name:      "missing subject",
			req:       ContentRequest{Topic: "Fractions", Grade: "5"},
			wantField: "subject",
		},
		{
			name:      "unknown subject",
			req:       ContentRequest{Subject: "History", Topic: "Romans", Grade: "5"},
			wantField: "subject",
		},
		{
			name:      "missing topic",
			req:       ContentRequest{Subject: "Science", Grade: "4"},
			wantField: "topic",
		},
		{
			name:      "missing grade",
			req:       ContentRequest{Subject: "Science", Topic: "States of Matter"},
			wantField: "grade",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
