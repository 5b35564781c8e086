package todo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, Render(&buf, nil))
	assert.NoError(t, Render(&buf, []Task{}))
	assert.Empty(t, buf.String())
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, []Task{
		{ID: 2, Name: "pay bills"},
		{ID: 10, Name: "buy milk"},
	})
	assert.NoError(t, err)

	want := "ID  Name\n" +
		"2   pay bills\n" +
		"10  buy milk\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_KeepsOneRowPerTask(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, []Task{{ID: 1, Name: "two\nlines\tand tab"}})
	assert.NoError(t, err)
	assert.Equal(t, "ID  Name\n1   two lines and tab\n", buf.String())
}
