package server

import (
	"log"
	"net/http"
)

// WSHandler upgrades the request and hands the connection to the practice
// session. There is one session per process; a reconnecting client resumes
// the auction in progress.
func WSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	GetSession().HandleConnection(conn)
}
