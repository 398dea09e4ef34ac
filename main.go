package main

import (
	"embed"
	"net/http"
	"os"
	"os/signal"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type Settings struct {
	Port             string `envconfig:"PORT" default:"8080"`
	Domain           string `envconfig:"DOMAIN" default:"watershed.example.org"`
	StaticURL        string `envconfig:"STATIC_URL" default:"/static/"`
	MessageStorePath string `envconfig:"MESSAGE_STORE_PATH" default:"/tmp/watershed-site"`
	SessionCookie    string `envconfig:"SESSION_COOKIE" default:"ws_session"`
	SessionSecret    string `envconfig:"SESSION_SECRET"`
	AdminAPIKey      string `envconfig:"ADMIN_API_KEY"`
	OAuthLoginURL    string `envconfig:"OAUTH_LOGIN_URL" default:"/oauth/login/"`
	DefaultLanguage  string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	ErrorLogPath     string `envconfig:"ERROR_LOG_PATH" default:"/tmp/watershed-errors.jsonl"`

	// extra reverse-proxy ranges whose forwarding headers we trust
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

//go:embed static/*
var static embed.FS

var (
	s   Settings
	log = zerolog.New(os.Stderr).Output(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Logger()
)

func main() {
	if err := envconfig.Process("", &s); err != nil {
		log.Fatal().Err(err).Msg("couldn't process envconfig")
		return
	}

	if err := InitErrorTracker(s.ErrorLogPath); err != nil {
		log.Fatal().Err(err).Msg("couldn't initialize error tracker")
		return
	}

	// message store and render cache
	closeCache := cache.initialize(s.MessageStorePath)
	defer closeCache()

	if s.AdminAPIKey == "" {
		log.Warn().Msg("ADMIN_API_KEY is unset, the site message API is disabled")
	}
	if s.SessionSecret == "" {
		log.Warn().Msg("SESSION_SECRET is unset, every visitor will be treated as anonymous")
	}

	// routes
	mux := http.NewServeMux()
	mux.Handle("/static/", http.FileServer(http.FS(static)))

	sub := http.NewServeMux()
	sub.HandleFunc("/robots.txt", renderRobots)
	sub.HandleFunc("/favicon.ico", redirectToFavicon)
	sub.HandleFunc("/health", renderHealth)
	sub.HandleFunc("/metrics", renderMetrics)
	sub.HandleFunc("/about", renderAbout)
	sub.HandleFunc("/admin/site-message", handleSiteMessage)
	sub.HandleFunc("/{$}", renderHomepage)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		recoveryMiddleware(
			loggingMiddleware(
				languageMiddleware(
					sessionMiddleware(
						queueMiddleware(
							sub.ServeHTTP,
						),
					),
				),
			),
		)(w, r)
	})

	corsH := cors.Default()

	log.Print("listening at http://0.0.0.0:" + s.Port)
	server := &http.Server{Addr: "0.0.0.0:" + s.Port, Handler: corsH.Handler(mux)}
	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, os.Interrupt)
	<-sc
	server.Close()
}

func redirectToFavicon(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/img/logo.svg", http.StatusFound)
}
