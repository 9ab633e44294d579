package registration

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost used for stored passwords.
const HashCost = 8

// User is a registered user.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

// UserService holds the real collaborators of the registration workflow.
// Its methods are invoked by name, so they are what tests substitute.
type UserService struct {
	db *badger.DB
}

// GetUserByEmail returns the user registered under email, or nil if there is none.
func (s *UserService) GetUserByEmail(email string) (*User, error) {
	var user *User

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			user = &User{}

			return jsoniter.ConfigFastest.Unmarshal(val, user)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", email, err)
	}

	return user, nil
}

// HashPassword hashes password with bcrypt.
func (s *UserService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// InsertUser stores a new user and returns its id.
func (s *UserService) InsertUser(email, name, passwordHash string) (string, error) {
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}

	data, err := jsoniter.ConfigFastest.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("encode user %q: %w", email, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(email), data)
	})
	if err != nil {
		return "", fmt.Errorf("insert user %q: %w", email, err)
	}

	return user.ID, nil
}

// NewUserService creates a UserService over db.
func NewUserService(db *badger.DB) *UserService {
	return &UserService{db: db}
}

// OpenInMemory opens an in-memory badger database. Data is lost when closed.
func OpenInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return db, nil
}

func userKey(email string) []byte {
	return []byte("user/email/" + email)
}
