package app

import "net/http"

type sessionKey string

// SessionKeyUserId is written by the authentication service sharing the
// session store.
const SessionKeyUserId = sessionKey("userID")

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}
