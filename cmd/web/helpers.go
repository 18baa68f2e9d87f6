package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (app *application) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.errorLog.Println(err)
	}
}

// fail writes the uniform error envelope every endpoint shares.
func (app *application) fail(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// serverError logs the cause with a stack trace and returns only a
// generic message to the caller.
func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	app.fail(w, http.StatusInternalServerError, "something went wrong")
}

func (app *application) decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func (app *application) sellerFromSession(r *http.Request) (primitive.ObjectID, error) {
	hex := app.session.GetString(r.Context(), "sellerID")
	return primitive.ObjectIDFromHex(hex)
}

func (app *application) isSellerAuthenticated(r *http.Request) bool {
	return app.session.Exists(r.Context(), "sellerID")
}
