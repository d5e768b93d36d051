//go:build !ios && !android && (amd64 || arm64)

package spotgo

import (
	"os"
	"testing"
	"time"
)

func TestInitConsistency(t *testing.T) {
	err := Init()
	if IsLoaded() != (err == nil) {
		t.Errorf("IsLoaded() = %v inconsistent with Init() = %v", IsLoaded(), err)
	}
	// Repeated Init must not change the outcome.
	if err2 := Init(); (err == nil) != (err2 == nil) {
		t.Errorf("Init results differ: %v vs %v", err, err2)
	}
}

func TestBuildIDWithoutLibrary(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present on this system")
	}
	if got := BuildID(); got != "" {
		t.Errorf("BuildID = %q, want \"\"", got)
	}
}

func TestSessionCreateWithoutKey(t *testing.T) {
	if _, err := SessionCreate(Config{UserAgent: "spotgo-test"}); err == nil {
		t.Fatal("expected error creating a session without an application key")
	}
}

func TestParseLinkWithoutLibrary(t *testing.T) {
	if IsLoaded() {
		t.Skip("libspotify is present on this system")
	}
	l := ParseLink("spotify:track:6JEK0CvvjDjjMUBFoXShNZ")
	if !l.IsNull() {
		t.Error("links cannot parse without the native library")
	}
	if _, err := l.String(); err == nil {
		t.Error("expected error rendering a null link")
	}
}

// TestSessionLifecycle exercises a real session end to end: login, an
// asynchronous search pumped to completion, logout. It needs libspotify
// plus credentials and an application key, so it is skipped in the
// ordinary test run.
func TestSessionLifecycle(t *testing.T) {
	if err := Init(); err != nil {
		t.Skipf("libspotify not available: %v", err)
	}

	keyFile := os.Getenv("SPOTGO_APPLICATION_KEY_FILE")
	user := os.Getenv("SPOTGO_TEST_USERNAME")
	pass := os.Getenv("SPOTGO_TEST_PASSWORD")
	if keyFile == "" || user == "" || pass == "" {
		t.Skip("SPOTGO_APPLICATION_KEY_FILE / SPOTGO_TEST_USERNAME / SPOTGO_TEST_PASSWORD not set")
	}

	key, err := os.ReadFile(keyFile)
	if err != nil {
		t.Fatalf("reading application key: %v", err)
	}

	loggedIn := make(chan error, 1)
	notify := make(chan struct{}, 1)

	sess, err := SessionCreate(Config{
		CacheLocation:    t.TempDir(),
		SettingsLocation: t.TempDir(),
		ApplicationKey:   key,
		UserAgent:        "spotgo-test",
		Callbacks: &SessionCallbacks{
			LoggedIn: func(_ *Session, err error) {
				loggedIn <- err
			},
			NotifyMainThread: func(*Session) {
				select {
				case notify <- struct{}{}:
				default:
				}
			},
		},
	})
	if err != nil {
		t.Fatalf("SessionCreate failed: %v", err)
	}
	defer sess.Release()

	if err := sess.Login(user, pass, false); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	searchDone := make(chan *Search, 1)
	deadline := time.After(60 * time.Second)
	for {
		next, err := sess.ProcessEvents()
		if err != nil {
			t.Fatalf("ProcessEvents failed: %v", err)
		}

		select {
		case err := <-loggedIn:
			if err != nil {
				t.Fatalf("login rejected: %v", err)
			}
			state, err := sess.ConnectionState()
			if err != nil {
				t.Fatalf("ConnectionState failed: %v", err)
			}
			t.Logf("connection state: %v, build %s", state, BuildID())

			search, err := sess.Search(SearchQuery{Query: "genesis", TrackCount: 10}, func(s *Search) {
				searchDone <- s
			})
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if loaded, err := search.IsLoaded(); err != nil {
				t.Fatalf("IsLoaded before completion: %v", err)
			} else if loaded {
				t.Log("search loaded before the first pump")
			}
		case s := <-searchDone:
			loaded, err := s.IsLoaded()
			if err != nil {
				t.Fatalf("IsLoaded inside completion window: %v", err)
			}
			if !loaded {
				t.Error("completion fired but IsLoaded is false")
			}
			n, err := s.NumTracks()
			if err != nil {
				t.Fatalf("NumTracks failed: %v", err)
			}
			if n < 0 {
				t.Errorf("NumTracks = %d", n)
			}
			total, err := s.TotalTracks()
			if err != nil {
				t.Fatalf("TotalTracks failed: %v", err)
			}
			t.Logf("search returned %d tracks of %d", n, total)
			s.Release()
			if err := sess.Logout(); err != nil {
				t.Errorf("Logout failed: %v", err)
			}
			return
		case <-notify:
		case <-time.After(next):
		case <-deadline:
			t.Fatal("timed out waiting for login and search")
		}
	}
}
