package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func contactForm() map[string]any {
	return map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "555-0100",
		"message": "Looking to redo the kitchen",
	}
}

func insertContact(t *testing.T, te *testEnv, id string, read bool, age string) {
	t.Helper()
	_, err := te.env.DB.Exec(
		`INSERT INTO contact_submissions (id, name, email, phone, message, read_status, submitted_at)
		 VALUES (?, 'Jane Doe', 'jane@example.com', '555-0100', 'hello', ?, datetime('now', ?))`,
		id, read, age)
	require.NoError(t, err)
}

func TestSubmitContact(t *testing.T) {
	t.Parallel()

	t.Run("stores submission without auth", func(t *testing.T) {
		t.Parallel()
		te := newTestEnv(t)

		w := te.do(jsonRequest(t, http.MethodPost, "/contact", contactForm()))
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		require.Equal(t, true, body["success"])
		require.NotEmpty(t, body["contactId"])

		var read bool
		require.NoError(t, te.env.DB.QueryRow(
			`SELECT read_status FROM contact_submissions WHERE id = ?`, body["contactId"],
		).Scan(&read))
		require.False(t, read)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		t.Parallel()
		te := newTestEnv(t)

		form := contactForm()
		delete(form, "message")
		w := te.do(jsonRequest(t, http.MethodPost, "/contact", form))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, 0, countRows(t, te, "contact_submissions"))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		t.Parallel()
		te := newTestEnv(t)

		form := contactForm()
		form["email"] = "not-an-email"
		w := te.do(jsonRequest(t, http.MethodPost, "/contact", form))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetContactSubmissions(t *testing.T) {
	t.Parallel()

	t.Run("requires bearer token", func(t *testing.T) {
		t.Parallel()
		te := newTestEnv(t)

		w := te.do(jsonRequest(t, http.MethodGet, "/contact", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lists newest first with optional read filter", func(t *testing.T) {
		t.Parallel()
		te := newTestEnv(t)
		insertContact(t, te, "sub-old", false, "-2 hours")
		insertContact(t, te, "sub-new", true, "-1 hours")

		w := te.do(withToken(jsonRequest(t, http.MethodGet, "/contact", nil), authToken(t)))
		require.Equal(t, http.StatusOK, w.Code)
		submissions := decodeBody(t, w)["submissions"].([]any)
		require.Len(t, submissions, 2)
		require.Equal(t, "sub-new", submissions[0].(map[string]any)["id"])

		w = te.do(withToken(jsonRequest(t, http.MethodGet, "/contact?read=false", nil), authToken(t)))
		submissions = decodeBody(t, w)["submissions"].([]any)
		require.Len(t, submissions, 1)
		require.Equal(t, "sub-old", submissions[0].(map[string]any)["id"])

		w = te.do(withToken(jsonRequest(t, http.MethodGet, "/contact?read=true", nil), authToken(t)))
		submissions = decodeBody(t, w)["submissions"].([]any)
		require.Len(t, submissions, 1)
		require.Equal(t, "sub-new", submissions[0].(map[string]any)["id"])
	})
}

func TestMarkContactRead(t *testing.T) {
	t.Parallel()

	t.Run("marking twice is idempotent", func(t *testing.T) {
		t.Parallel()
		te := newTestEnv(t)
		insertContact(t, te, "sub-1", false, "-1 hours")

		for i := 0; i < 2; i++ {
			w := te.do(withToken(jsonRequest(t, http.MethodPut, "/contact/sub-1/read", nil), authToken(t)))
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, true, decodeBody(t, w)["success"])

			var read bool
			require.NoError(t, te.env.DB.QueryRow(
				`SELECT read_status FROM contact_submissions WHERE id = ?`, "sub-1",
			).Scan(&read))
			require.True(t, read)
		}
	})
}
