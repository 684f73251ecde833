package usecase

import (
	"time"

	"github.com/piresc/quizarena/internal/pkg/database"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/services/auth"
	"github.com/piresc/quizarena/services/wallet"
	"golang.org/x/crypto/bcrypt"
)

// AuthUC implements OTP login
type AuthUC struct {
	authRepo   auth.AuthRepo
	walletUC   wallet.WalletUC
	tx         database.Transactor
	cfg        *models.Config
	bcryptCost int
	now        func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	walletUC wallet.WalletUC,
	tx database.Transactor,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:   authRepo,
		walletUC:   walletUC,
		tx:         tx,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}
