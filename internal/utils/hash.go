// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when the configuration does not
// specify one. bcrypt.DefaultCost (10) keeps hashing around tens of
// milliseconds on current hardware.
const DefaultBcryptCost = bcrypt.DefaultCost

// DummyPasswordDigest is a well-formed bcrypt digest of a throwaway string.
// Login verifies against it when the account lookup misses, so the response
// time of "unknown identifier" stays indistinguishable from "wrong password".
// The comparison result on that path is always discarded; the constant is
// never used as a credential.
const DummyPasswordDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a salted bcrypt digest from the plaintext password
// using the given work factor. The salt is generated fresh on every call and
// embedded in the returned digest, so verification needs no separate salt
// storage.
//
// Returns an error only on malformed input (empty password, cost outside the
// bcrypt range); an error never signals a "wrong password".
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the bcrypt
// digest. The underlying comparison recomputes the hash with the salt and
// cost embedded in the digest and compares in constant time.
//
// A mismatch is a false result, not an error. An error is returned only for
// malformed input, e.g. a digest that is not a bcrypt string.
func VerifyPassword(password, digest string) (bool, error) {
	if digest == "" {
		return false, errors.New("empty password digest")
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}
