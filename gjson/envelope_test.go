package gjson_test

import (
	"testing"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/gjson"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("unwraps data envelope with nested list and pagination", func(t *testing.T) {
		t.Parallel()

		env := gjson.Parse([]byte(`{"success":true,"data":{"blogs":[{"_id":"1"},{"_id":"2"}],"pagination":{"page":2,"limit":2,"total":5}}}`))

		assert.Len(t, env.List("blogs"), 2)
		assert.Equal(t, atelier.Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, env.Pagination)
	})

	t.Run("accepts data array", func(t *testing.T) {
		t.Parallel()

		env := gjson.Parse([]byte(`{"success":true,"data":[{"id":"a"}]}`))

		assert.Len(t, env.List("blogs"), 1)
		assert.True(t, env.Pagination.IsZero())
	})

	t.Run("accepts bare array", func(t *testing.T) {
		t.Parallel()

		env := gjson.Parse([]byte(`[{"id":"a"},{"id":"b"},{"id":"c"}]`))

		assert.Len(t, env.List(), 3)
	})

	t.Run("reads pagination at envelope root", func(t *testing.T) {
		t.Parallel()

		env := gjson.Parse([]byte(`{"data":[],"pagination":{"page":1,"limit":10,"total":30,"pages":3}}`))

		assert.Equal(t, atelier.Pagination{Page: 1, Limit: 10, Total: 30, Pages: 3}, env.Pagination)
	})

	t.Run("invalid JSON yields empty envelope", func(t *testing.T) {
		t.Parallel()

		env := gjson.Parse([]byte(`{not json`))

		assert.Nil(t, env.List("blogs"))
		_, ok := env.Item()
		assert.False(t, ok)
	})
}

func TestEnvelope_Item(t *testing.T) {
	t.Parallel()

	t.Run("prefers keyed item", func(t *testing.T) {
		t.Parallel()

		v, ok := gjson.Parse([]byte(`{"data":{"portfolio":{"_id":"p1","title":"Loft"}}}`)).Item("portfolio")

		assert.True(t, ok)
		assert.Equal(t, "p1", v.Get("_id").String())
	})

	t.Run("falls back to payload", func(t *testing.T) {
		t.Parallel()

		v, ok := gjson.Parse([]byte(`{"data":{"_id":"p1","title":"Loft"}}`)).Item("portfolio")

		assert.True(t, ok)
		assert.Equal(t, "Loft", v.Get("title").String())
	})

	t.Run("accepts bare object", func(t *testing.T) {
		t.Parallel()

		_, ok := gjson.Parse([]byte(`{"id":"p1"}`)).Item()

		assert.True(t, ok)
	})

	t.Run("rejects envelope without item", func(t *testing.T) {
		t.Parallel()

		_, ok := gjson.Parse([]byte(`{"success":false,"message":"nope"}`)).Item("portfolio")

		assert.False(t, ok)
	})
}
