package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/jake-scott/comfortcloud/internal/pkg/ccapi"
	"github.com/jake-scott/comfortcloud/internal/pkg/logging"
)

// Store persists a Comfort Cloud session between CLI invocations
type Store struct {
	fileName string
}

// on-disk form of a session
type storedSession struct {
	AccessToken string    `json:"access-token"`
	ClientID    string    `json:"client-id"`
	SavedAt     time.Time `json:"saved-at"`
}

// Saved is a session as loaded from disk
type Saved struct {
	Session *ccapi.Session
	SavedAt time.Time
}

// obfuscate the token when stringified
func (s Saved) String() string {
	return fmt.Sprintf("ClientID [%s], accessToken [%s], savedAt [%s]",
		s.Session.ClientID(), logging.Redact(s.Session.AccessToken()), s.SavedAt.Format(time.RFC3339))
}

func New(fileName string) Store {
	return Store{fileName: fileName}
}

func (s Store) FileName() string {
	return s.fileName
}

// Save writes the session, readable by the owner only
func (s Store) Save(session *ccapi.Session) error {
	if !session.LoggedIn() {
		return errors.New("refusing to save a session without a token")
	}

	sm := storedSession{
		AccessToken: session.AccessToken(),
		ClientID:    session.ClientID(),
		SavedAt:     time.Now().UTC(),
	}

	file, err := os.OpenFile(s.fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrapf(err, "opening session file %s for write", s.fileName)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sm); err != nil {
		return errors.Wrapf(err, "saving session to %s", s.fileName)
	}

	logging.Logger(nil).Debugf("saved session to %s", s.fileName)
	return nil
}

// Load reads a saved session.  A missing file is reported with an error
// satisfying os.IsNotExist on its cause.
func (s Store) Load() (*Saved, error) {
	file, err := os.Open(s.fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "opening session file %s for read", s.fileName)
	}
	defer file.Close()

	sm := storedSession{}
	if err := json.NewDecoder(file).Decode(&sm); err != nil {
		return nil, errors.Wrapf(err, "loading session from %s", s.fileName)
	}

	if sm.AccessToken == "" {
		return nil, errors.Errorf("session file %s holds no token", s.fileName)
	}

	return &Saved{
		Session: ccapi.NewSessionWithToken(sm.AccessToken, sm.ClientID),
		SavedAt: sm.SavedAt,
	}, nil
}

// Remove deletes the saved session, if any
func (s Store) Remove() error {
	if err := os.Remove(s.fileName); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing session file %s", s.fileName)
	}
	return nil
}
