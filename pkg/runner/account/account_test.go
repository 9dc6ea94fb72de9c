package account

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/deck/pkg/session"
	"tableflip.dev/deck/pkg/store"
)

func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	b := store.NewMemory()
	var out bytes.Buffer

	reg := Register{Blobs: b, Out: &out, Request: session.RegisterRequest{
		Username: "ada",
		Name:     "Ada",
		Password: "hunter22a",
		Confirm:  "hunter22a",
	}}
	require.NoError(t, reg.Do(ctx))
	assert.Equal(t, "registered as Ada (ada)\n", out.String())

	out.Reset()
	who := WhoAmI{Blobs: b, Out: &out}
	require.NoError(t, who.Do(ctx))
	assert.Equal(t, "signed in as Ada (ada)\n", out.String())

	out.Reset()
	logout := Logout{Blobs: b, Out: &out}
	require.NoError(t, logout.Do(ctx))
	assert.Equal(t, "signed out\n", out.String())

	assert.ErrorIs(t, who.Do(ctx), session.ErrNotSignedIn)

	login := Login{Blobs: b, Username: "ada", Password: "nope"}
	assert.ErrorIs(t, login.Do(ctx), session.ErrInvalidCredentials)

	out.Reset()
	login = Login{Blobs: b, Username: "ada", Password: "hunter22a", JSON: true, Out: &out}
	require.NoError(t, login.Do(ctx))
	assert.Contains(t, out.String(), `"username": "ada"`)
}

func TestWhoAmIEvents(t *testing.T) {
	ctx := context.Background()
	b := store.NewMemory()
	reg := Register{Blobs: b, Out: &bytes.Buffer{}, Request: session.RegisterRequest{
		Username: "ada",
		Password: "hunter22a",
		Confirm:  "hunter22a",
	}}
	require.NoError(t, reg.Do(ctx))

	var out bytes.Buffer
	who := WhoAmI{Blobs: b, Events: true, Out: &out}
	require.NoError(t, who.Do(ctx))
	assert.Contains(t, out.String(), "signed in as ada")
	assert.Contains(t, out.String(), "Security events")
}
