package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/auth"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/config"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/models"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/repositories/repomanager"
)

// AuthResult is what a successful Authenticate hands back: the account view
// plus a signed access token for the transport layer.
type AuthResult struct {
	Account     models.AccountView
	AccessToken string
}

// AccountService handles registration and credential verification.
type AccountService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	logger              logging.Logger
	jwtSecret           []byte
	accessTokenValidity time.Duration
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *AccountService {
	return &AccountService{
		db:                  db,
		repomanager:         m,
		logger:              l.With("module", "accounts"),
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
	}
}

// Register stores a new account with a bcrypt hash of the secret. A taken
// identifier yields common.ErrorAlreadyExists.
func (s *AccountService) Register(ctx context.Context, identifier, secret, displayName string) (*models.AccountView, error) {

	hash, err := auth.HashSecret(secret)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &models.Account{
		Identifier:   identifier,
		DisplayName:  displayName,
		PasswordHash: hash,
	}

	repo := s.repomanager.Accounts(s.db)
	if _, err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.logger.Info(ctx, "account registered", "identifier", identifier)
	return &models.AccountView{Identifier: account.Identifier, DisplayName: account.DisplayName}, nil
}

// Authenticate verifies the secret against the stored hash and mints an
// access token. Unknown identifier and wrong secret fail identically with
// common.ErrorInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, identifier, secret string) (*AuthResult, error) {

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckSecret(account.PasswordHash, secret) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(account.Identifier, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{
		Account:     models.AccountView{Identifier: account.Identifier, DisplayName: account.DisplayName},
		AccessToken: token,
	}, nil
}
