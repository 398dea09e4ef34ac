package main

import (
	"encoding/json"
	"net/http"
	"strings"
)

const siteMessageKey = "site-message"

// SiteMessage is the page content model owned by the content-management
// side: a site-wide maintenance notice toggled on and off by operators.
// The landing page only ever reads it.
type SiteMessage struct {
	CanShowMessage bool   `json:"can_show_message"`
	MessageType    string `json:"message_type"`
	Content        string `json:"content"`
}

func (m SiteMessage) IsWarning() bool {
	return strings.EqualFold(m.MessageType, "warning")
}

// BannerStyle picks the alert style: warnings are rendered as danger,
// everything else as success.
func (m SiteMessage) BannerStyle() string {
	if m.IsWarning() {
		return "danger"
	}
	return "success"
}

func loadSiteMessage() (SiteMessage, bool) {
	var m SiteMessage
	ok := cache.GetJSON(siteMessageKey, &m)
	return m, ok
}

// handleSiteMessage is the write path the external CMS would otherwise own:
// operators set, inspect, and clear the maintenance notice here.
func handleSiteMessage(w http.ResponseWriter, r *http.Request) {
	if s.AdminAPIKey == "" || r.Header.Get("Authorization") != "Bearer "+s.AdminAPIKey {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		msg, ok := loadSiteMessage()
		if !ok {
			http.Error(w, "no site message", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(msg)

	case http.MethodPut:
		var msg SiteMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
			return
		}
		cache.SetJSON(siteMessageKey, msg)
		log.Info().
			Bool("visible", msg.CanShowMessage).
			Str("type", msg.MessageType).
			Msg("site message updated")
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		cache.Delete(siteMessageKey)
		log.Info().Msg("site message cleared")
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
