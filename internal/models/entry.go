// Package models defines the credential types stored in a vault and handed
// to the CLI.
package models

import "time"

// Entry is one row of the entries table. Overview and Details hold AEAD
// ciphertext next to their nonces; nothing in this struct is readable
// without the master key.
type Entry struct {
	// Id is the entry uuid.
	Id string

	// Overview is the sealed Overview (title, username, url).
	Overview []byte
	// NonceOverview is the AEAD nonce for Overview.
	NonceOverview []byte

	// Details is the sealed Credential.
	Details []byte
	// NonceDetails is the AEAD nonce for Details.
	NonceDetails []byte

	// UpdatedAt is the last modification time in UTC.
	UpdatedAt time.Time
}

// Overview is the searchable part of a credential.
type Overview struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Credential is the decrypted view of an entry.
type Credential struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	URL              string `json:"url"`
	Notes            string `json:"notes"`
	AutotypeSequence string `json:"autotype_sequence"`
}

// Overview returns the searchable fields of c.
func (c Credential) Overview() Overview {
	return Overview{Title: c.Title, Username: c.Username, URL: c.URL}
}

// HasAutotype reports whether a custom autotype sequence is configured.
func (c Credential) HasAutotype() bool {
	return c.AutotypeSequence != ""
}

// Field returns the value behind an autotype placeholder name such as
// "USERNAME". Unknown names report false.
func (c Credential) Field(name string) (string, bool) {
	switch name {
	case "TITLE":
		return c.Title, true
	case "USERNAME":
		return c.Username, true
	case "PASSWORD":
		return c.Password, true
	case "URL":
		return c.URL, true
	case "NOTES":
		return c.Notes, true
	}
	return "", false
}
