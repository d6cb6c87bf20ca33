package server

import (
	"bytes"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ekaraca/blackboard/internal/config"
	"github.com/ekaraca/blackboard/internal/db"
)

func TestRunReleasesResourcesOnListenFailure(t *testing.T) {
	// Occupy a port so ListenAndServe fails immediately.
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to reserve a port: %v", err)
	}
	defer listener.Close()
	port := listener.Addr().(*net.TCPAddr).Port

	cfg := &config.Config{}
	cfg.Server.Port = strconv.Itoa(port)

	var logBuf bytes.Buffer
	gin.SetMode(gin.TestMode)
	s := &Server{
		config:   cfg,
		router:   gin.New(),
		database: &db.PostgresDB{},
		logger:   zerolog.New(&logBuf),
	}

	if err := s.Run(); err == nil {
		t.Fatal("Run() = nil, want a listen error")
	}

	log := logBuf.String()
	if !strings.Contains(log, "Closing database connection pool") {
		t.Fatalf("database pool not released after listen failure, log: %s", log)
	}
}
