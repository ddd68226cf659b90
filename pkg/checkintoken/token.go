package checkintoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrSignatureInvalid возвращается при невалидной подписи или повреждённом токене
	ErrSignatureInvalid = errors.New("checkintoken: invalid token signature")

	// ErrTokenExpired возвращается, когда срок действия токена истёк
	ErrTokenExpired = errors.New("checkintoken: token expired")
)

const issuer = "eatease-booking-service"

// Claims полезная нагрузка токена чек-ина: только идентификатор бронирования.
// Бизнес-окно (start/end бронирования) проверяется движком переходов заново при
// каждом предъявлении, независимо от срока жизни токена.
type Claims struct {
	BookingID int64 `json:"bookingId"`
	jwt.RegisteredClaims
}

// Signer issues and verifies short-lived HS256 tokens binding a booking id to a
// check-in action. The TTL is fixed and independent of the booking length.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a signer with the given secret and token lifetime
func NewSigner(secret []byte, ttl time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for bookingID, valid from now for the configured TTL
func (s *Signer) Issue(bookingID int64, now time.Time) (string, error) {
	claims := Claims{
		BookingID: bookingID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("checkintoken: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and validity window against now and
// returns the embedded booking id.
func (s *Signer) Verify(tokenString string, now time.Time) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	if !token.Valid || claims.BookingID <= 0 {
		return 0, ErrSignatureInvalid
	}

	return claims.BookingID, nil
}
