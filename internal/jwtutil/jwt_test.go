package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueThenVerify_ReturnsIdentity(t *testing.T) {
	m := NewManager(testSecret, time.Hour, nil)

	for _, uid := range []string{"65f000000000000000000001", "abc", "user-with-dashes"} {
		tok, err := m.Issue(uid)
		require.NoError(t, err)

		got, err := m.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, uid, got)
	}
}

func TestVerify_RejectsUniformly(t *testing.T) {
	m := NewManager(testSecret, time.Hour, nil)
	valid, err := m.Issue("u1")
	require.NoError(t, err)

	other := NewManager("another-secret", time.Hour, nil)
	foreign, err := other.Issue("u1")
	require.NoError(t, err)

	expiredMgr := NewManager(testSecret, time.Hour, nil)
	expiredMgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredMgr.Issue("u1")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{User: &UserClaim{ID: "u1"}}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		User:             &UserClaim{ID: "u1"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"missing":     "",
		"garbage":     "not.a.token",
		"bad-sig":     foreign,
		"expired":     expired,
		"no-exp":      noExp,
		"no-identity": noIdentity,
		"alg-none":    noneAlg,
		"tampered":    tamper(valid),
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			uid, err := m.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, uid)
		})
	}
}

func TestVerify_AcceptsUIDAndSubjectFallbacks(t *testing.T) {
	m := NewManager(testSecret, time.Hour, nil)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	uidTok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UID:              "from-uid",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	subTok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "from-sub", ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	got, err := m.Verify(uidTok)
	require.NoError(t, err)
	assert.Equal(t, "from-uid", got)

	got, err = m.Verify(subTok)
	require.NoError(t, err)
	assert.Equal(t, "from-sub", got)
}

// tamper rewrites the second-to-last signature character, whose six bits are
// all significant.
func tamper(tok string) string {
	b := []byte(tok)
	i := len(b) - 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
