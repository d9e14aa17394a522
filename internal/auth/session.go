package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

var (
	// ErrInvalidCredentials is deliberately the only sign-in failure: it does
	// not distinguish wrong-password from unknown-account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")
)

// Session is an authenticated operator's active login state.
type Session struct {
	Token      string    `json:"token"`
	OperatorID string    `json:"operator_id"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and revokes operator sessions and delivers a change feed:
// subscribers receive the new session on sign-in and nil on sign-out or
// expiry, exactly once per change.
type Manager struct {
	operators entity.OperatorRepositoryInterface
	secret    []byte
	ttl       time.Duration

	mu      sync.Mutex
	active  map[string]*Session // keyed by token id (jti)
	subs    map[int]chan *Session
	nextSub int

	stop chan struct{}
	once sync.Once
}

func NewManager(operators entity.OperatorRepositoryInterface, secret string, ttl time.Duration) *Manager {
	m := &Manager{
		operators: operators,
		secret:    []byte(secret),
		ttl:       ttl,
		active:    make(map[string]*Session),
		subs:      make(map[int]chan *Session),
		stop:      make(chan struct{}),
	}
	go m.sweep()
	return m
}

// SignIn checks the credentials and establishes a session. Any mismatch,
// including an unknown email, returns ErrInvalidCredentials.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	op, err := m.operators.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	expires := now.Add(m.ttl)
	jti := uuid.New().String()

	claims := &Claims{
		Email: op.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   op.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:      token,
		OperatorID: op.ID,
		Email:      op.Email,
		ExpiresAt:  expires,
	}

	m.mu.Lock()
	m.active[jti] = session
	m.notifyLocked(session)
	m.mu.Unlock()

	return session, nil
}

// SignOut revokes the session behind the token and notifies subscribers.
func (m *Manager) SignOut(token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.active[claims.ID]; !ok {
		return ErrInvalidSession
	}
	delete(m.active, claims.ID)
	m.notifyLocked(nil)
	return nil
}

// Current is the one-shot session check: it validates the token signature,
// expiry, and that the session has not been revoked.
func (m *Manager) Current(token string) (*Session, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.active[claims.ID]
	if !ok {
		return nil, ErrInvalidSession
	}
	if time.Now().After(session.ExpiresAt) {
		delete(m.active, claims.ID)
		m.notifyLocked(nil)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Subscribe registers for session changes. The returned func must be called
// when the subscriber goes away, or it will keep receiving notifications.
func (m *Manager) Subscribe() (<-chan *Session, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan *Session, 16)
	m.subs[id] = ch

	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
	}
}

// Close stops the expiry sweeper.
func (m *Manager) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Manager) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// sweep expires sessions in the background so subscribers hear about expiry
// without anyone polling.
func (m *Manager) sweep() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.sweepExpired()
		}
	}
}

func (m *Manager) sweepExpired() {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for jti, session := range m.active {
		if now.After(session.ExpiresAt) {
			delete(m.active, jti)
			m.notifyLocked(nil)
		}
	}
}

// notifyLocked fans one change out to every subscriber. A subscriber that has
// stopped draining its buffer misses the change instead of blocking sign-in.
func (m *Manager) notifyLocked(session *Session) {
	for _, ch := range m.subs {
		select {
		case ch <- session:
		default:
		}
	}
}
