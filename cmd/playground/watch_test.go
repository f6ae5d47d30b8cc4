package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/playground/pkg/structs"
)

type recordText struct {
	got []string
}

func (r *recordText) SetText(in string) {
	r.got = append(r.got, in)
}

func TestUntilFinal(t *testing.T) {
	cases := []struct {
		Name         string
		Enabled      bool
		Given        []string
		ExpectCancel bool
		ExpectFinal  structs.Status
	}{
		{"Disabled", false, []string{"planning", "applied"}, false, ""},
		{"NotFinal", true, []string{"pending", "planning"}, false, ""},
		{"Applied", true, []string{"planning", "applied"}, true, structs.APPLIED},
		{"Errored", true, []string{"errored"}, true, structs.ERRORED},
		{"Unknown", true, []string{"done"}, false, ""},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cancelled := false
			next := &recordText{}
			u := &untilFinal{next: next, enabled: c.Enabled, cancel: func() { cancelled = true }}

			for _, s := range c.Given {
				u.SetText(s)
			}

			assert.Equal(t, c.Given, next.got)
			assert.Equal(t, c.ExpectCancel, cancelled)
			assert.Equal(t, c.ExpectFinal, u.Final())
		})
	}
}
