// Command server is the HTTP front end for the spell-checking engine.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"spellcheck/internal/checker"
	"spellcheck/internal/config"
)

func main() {
	cfg := checker.DefaultConfig()
	dictionaryPath := "dictionaries/en_US.dict"

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		settings, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("could not load config %s: %v", configPath, err)
		}
		cfg = settings.Checker
		dictionaryPath = settings.DictionaryPath
	}

	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	c := checker.New(cfg)
	c.UseRemoteWordStore(checker.NewRemoteWordStore(client, getenv("REDIS_CUSTOM_WORDS_KEY", "")))

	dictionaryPath = getenv("DICTIONARY_PATH", dictionaryPath)
	if !c.LoadDictionary(dictionaryPath) {
		log.Printf("could not load dictionary: %s", dictionaryPath)
	}
	if err := c.LoadCustomWords(context.Background()); err != nil {
		log.Printf("could not load custom words: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/check", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeJSONError(w, http.StatusBadRequest, "invalid request")
			return
		}

		misses := c.CheckText(req.Text)
		type miss struct {
			Word        string   `json:"word"`
			Offset      int      `json:"offset"`
			Suggestions []string `json:"suggestions"`
		}
		out := make([]miss, len(misses))
		for i, m := range misses {
			out[i] = miss{Word: m.Word, Offset: m.Offset, Suggestions: c.Suggestions(m.Word)}
		}
		writeJSON(w, http.StatusOK, map[string]any{"misspellings": out})
	})

	mux.HandleFunc("/api/v1/word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeJSONError(w, http.StatusBadRequest, "word is required")
			return
		}
		correct := c.IsCorrect(word)
		var suggestions []string
		if !correct {
			suggestions = c.Suggestions(word)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"word":        word,
			"correct":     correct,
			"suggestions": suggestions,
		})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeJSONError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if err := c.AddWord(req.Word); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			writeJSONError(w, http.StatusBadRequest, "word is required")
			return
		}
		if err := c.RemoveWord(word); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		size, memBytes := c.Stats()
		writeJSON(w, http.StatusOK, map[string]any{
			"word_count":   size,
			"memory_bytes": memBytes,
		})
	})

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("listening on %s", addr)
	var mu sync.Mutex
	serialized := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		mux.ServeHTTP(w, r)
	})
	handler := http.TimeoutHandler(serialized, 10*time.Second, `{"error":"request timed out"}`)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
