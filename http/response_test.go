package http

import (
	"testing"

	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/kv"
	"github.com/stretchr/testify/require"
)

func TestResponseBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
		require.False(t, fields.StatusOnly)
	})

	t.Run("headers keep insertion order and duplicates", func(t *testing.T) {
		fields := NewResponse().
			Header("Set-Cookie", "a=1", "b=2").
			Header("Vary", "Accept").
			Reveal()

		require.Equal(t, []Header{
			{Key: "Set-Cookie", Value: "a=1"},
			{Key: "Set-Cookie", Value: "b=2"},
			{Key: "Vary", Value: "Accept"},
		}, fields.Headers)
	})

	t.Run("shortcuts", func(t *testing.T) {
		fields := OK("hello").Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, []Header{{Key: "Content-Type", Value: "text/plain"}}, fields.Headers)
		require.Equal(t, "hello", string(fields.Body))

		fields = NotFound().Reveal()
		require.Equal(t, status.NotFound, fields.Code)
		require.Equal(t, "Not Found", string(fields.Body))
	})

	t.Run("status only", func(t *testing.T) {
		fields := NewResponse().Code(status.NotFound).StatusOnly().Reveal()
		require.True(t, fields.StatusOnly)
		require.Equal(t, status.NotFound, fields.Code)
	})

	t.Run("custom status text", func(t *testing.T) {
		fields := NewResponse().Code(418).Status("I'm A Teapot").Reveal()
		require.Equal(t, status.Code(418), fields.Code)
		require.Equal(t, status.Status("I'm A Teapot"), fields.Status)
	})
}

func TestResponseJSON(t *testing.T) {
	model := struct {
		Hello string `json:"hello"`
	}{Hello: "world"}

	resp, err := NewResponse().TryJSON(model)
	require.NoError(t, err)

	fields := resp.Reveal()
	require.JSONEq(t, `{"hello":"world"}`, string(fields.Body))
	require.Contains(t, fields.Headers, kv.Pair{Key: "Content-Type", Value: "application/json"})
}
