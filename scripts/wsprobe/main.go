// Connects to the insight streaming endpoint for an analyzed quiz
// session and prints the frames as they arrive.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
)

type frame struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Source string `json:"source,omitempty"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/wsprobe <quiz_token>")
		os.Exit(1)
	}

	token := os.Args[1]

	u := url.URL{
		Scheme: "ws",
		Host:   "localhost:8080",
		Path:   "/api/v1/ws/insights",
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	fmt.Printf("Connecting to %s\n", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer c.Close() //nolint:errcheck

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			_, raw, err := c.ReadMessage()
			if err != nil {
				log.Println("read:", err)
				return
			}

			var msg frame
			if err := json.Unmarshal(raw, &msg); err != nil {
				log.Println("parse:", err)
				continue
			}

			switch msg.Type {
			case "chunk":
				fmt.Print(msg.Text)

			case "done":
				fmt.Printf("\n\n[done] source=%s model=%s\n", msg.Source, msg.Model)
				return

			case "error":
				fmt.Printf("\n[error] %s\n", msg.Error)
				return
			}
		}
	}()

	select {
	case <-done:
	case <-interrupt:
		fmt.Println("\ninterrupted")
	}
}
