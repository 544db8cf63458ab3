package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	answerrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/answer/repository"
	answerservice "github.com/LEEEUNCHEOL96/sbb-board/internal/answer/service"
	boardhttp "github.com/LEEEUNCHEOL96/sbb-board/internal/board/http"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/clock"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/config"
	commoncrypto "github.com/LEEEUNCHEOL96/sbb-board/internal/common/crypto"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/db"
	commonhttp "github.com/LEEEUNCHEOL96/sbb-board/internal/common/http"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	srv "github.com/LEEEUNCHEOL96/sbb-board/internal/common/server"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/identity"
	questionrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/question/repository"
	questionservice "github.com/LEEEUNCHEOL96/sbb-board/internal/question/service"
	userrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/user/repository"
	userservice "github.com/LEEEUNCHEOL96/sbb-board/internal/user/service"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "board", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.LoadBoardConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	clk := clock.NewRealClock()
	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	users := userrepo.NewPgRepository(pool)
	questions := questionrepo.NewPgRepository(pool)
	answers := answerrepo.NewPgRepository(pool)

	userService := userservice.NewUserService(users, hasher, idGenerator, clk, log)
	questionService := questionservice.NewQuestionService(questions, clk, cfg.PageSize, log)
	answerService := answerservice.NewAnswerService(answers, clk, log)

	tokenIssuer := identity.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	identityService := identity.NewService(users, hasher, tokenIssuer, log)

	handler := boardhttp.NewHandler(boardhttp.HandlerDeps{
		Questions: questionService,
		Answers:   answerService,
		Users:     userService,
		Identity:  identityService,
		Render:    boardhttp.NewJSONRenderer(),
		Log:       log,
	})

	requestTimeout := commonhttp.RequestTimeoutMiddleware(cfg.RequestTimeout)
	resolvePrincipal := identity.ResolveMiddleware(cfg.JWTSecret, log)

	mux := http.NewServeMux()
	mux.Handle("/", requestTimeout(resolvePrincipal(handler)))
	mux.Handle("/metrics", promhttp.Handler())

	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	srv.StartWithGracefulShutdown(server, log, "board")
}
