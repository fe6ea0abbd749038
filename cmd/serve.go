package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"focusos/handlers"
	"focusos/storage"
)

var (
	servePort     string
	serveMongoURI string
	serveMongoDB  string
	serveTZ       string
	serveMemory   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the FocusOS API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", envOr("PORT", "5000"), "Port to listen on")
	serveCmd.Flags().StringVar(&serveMongoURI, "mongo-uri", envOr("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	serveCmd.Flags().StringVar(&serveMongoDB, "db", envOr("MONGO_DB", "focusos"), "MongoDB database name")
	serveCmd.Flags().StringVar(&serveTZ, "tz", envOr("FOCUSOS_TZ", "Asia/Kolkata"), "Canonical time zone for calendar dates")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "Use the in-memory store instead of MongoDB (data is lost on exit)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// The canonical zone decides where a "day" begins for every user.
	// It is fixed per deployment, never taken from the host clock.
	zone, err := time.LoadLocation(serveTZ)
	if err != nil {
		return fmt.Errorf("load time zone %q: %w", serveTZ, err)
	}

	var entries storage.EntryStore
	var users storage.UserStore
	if serveMemory {
		log.Println("Using in-memory store; all data is lost on exit")
		entries = storage.NewMemoryEntryStore()
		users = storage.NewMemoryUserStore()
	} else {
		ctx := context.Background()
		db, err := storage.Connect(ctx, serveMongoURI, serveMongoDB)
		if err != nil {
			return err
		}
		defer db.Client().Disconnect(context.Background())

		if entries, err = storage.NewMongoEntryStore(ctx, db); err != nil {
			return err
		}
		if users, err = storage.NewMongoUserStore(ctx, db); err != nil {
			return err
		}
		log.Println("MongoDB connected")
	}

	deps := &handlers.Deps{
		Entries:    entries,
		Users:      users,
		Tokens:     storage.NewTokenStore(),
		Zone:       zone,
		GeminiKey:  envOr("GEMINI_API_KEY", ""),
		GeminiBase: handlers.DefaultGeminiBase,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "FocusOS API is running...")
	})

	// Auth & owner configuration
	mux.HandleFunc("POST /api/auth/register", deps.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", deps.HandleLogin)
	mux.HandleFunc("GET /api/auth/user", deps.RequireAuth(deps.HandleCurrentUser))
	mux.HandleFunc("PUT /api/auth/tracks", deps.RequireAuth(deps.HandleUpdateTracks))
	mux.HandleFunc("PUT /api/auth/todos", deps.RequireAuth(deps.HandleUpdateTodos))

	// Focus entries
	mux.HandleFunc("POST /api/focus", deps.RequireAuth(deps.HandleLogFocus))
	mux.HandleFunc("GET /api/focus", deps.RequireAuth(deps.HandleListFocus))
	mux.HandleFunc("PUT /api/focus/{entryId}", deps.RequireAuth(deps.HandleReplaceFocus))
	mux.HandleFunc("DELETE /api/focus/{entryId}", deps.RequireAuth(deps.HandleDeleteFocus))

	// Derived analytics
	mux.HandleFunc("GET /api/analytics", deps.RequireAuth(deps.HandleAnalytics))

	// AI coach
	mux.HandleFunc("POST /api/ai/analyze", deps.RequireAuth(deps.HandleAnalyzeWeek))

	addr := fmt.Sprintf(":%s", servePort)
	log.Printf("FocusOS listening on http://localhost:%s (zone %s)", servePort, zone)
	return http.ListenAndServe(addr, mux)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
