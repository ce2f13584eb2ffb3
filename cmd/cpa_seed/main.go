package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
	"github.com/mgiraudo/club_payments_app/internal/core/services"
	"github.com/mgiraudo/club_payments_app/internal/dto"
	"github.com/mgiraudo/club_payments_app/internal/platform/config"
	"github.com/mgiraudo/club_payments_app/internal/repositories/database/pgsql"
	"github.com/mgiraudo/club_payments_app/pkg/database"
	"github.com/shopspring/decimal"
)

var firstNames = []string{
	"JUAN", "MARIA", "CARLOS", "ANA", "LUIS", "SOFIA", "DIEGO", "VALENTINA",
	"MATEO", "CAMILA", "SEBASTIAN", "ISABELLA", "NICOLAS", "MIA", "SANTIAGO",
	"EMMA", "LUCAS", "OLIVIA", "BENJAMIN", "AVA", "MATIAS", "LUCIA", "AGUSTIN",
	"MARTINA", "TOMAS", "EMILIA", "CATALINA", "JOAQUIN", "JULIA", "GABRIEL",
	"CLARA", "MARTIN", "PAULA", "FRANCISCO", "CAROLINA", "MANUEL", "FERNANDA",
	"PEDRO", "DANIELA", "ALEJANDRO", "GABRIELA", "RICARDO", "LAURA", "FERNANDO",
}

var lastNames = []string{
	"PEREZ", "GONZALEZ", "RODRIGUEZ", "MARTINEZ", "FERNANDEZ", "LOPEZ",
	"SANCHEZ", "DIAZ", "RAMIREZ", "TORRES", "FLORES", "GARCIA", "ROMERO",
	"RUIZ", "MORENO", "CASTRO", "ORTIZ", "SILVA", "ROJAS", "MENDOZA",
	"ALVAREZ", "JIMENEZ", "CRUZ", "REYES", "VARGAS", "HERRERA", "MEDINA",
	"AGUILAR", "RAMOS", "NAVARRO", "GUERRERO", "VAZQUEZ", "GUTIERREZ",
	"DOMINGUEZ", "GOMEZ", "CAMPOS", "LEON", "RIOS", "MORALES", "SOTO",
}

var descriptions = []string{
	"Monthly fee", "Paid on time", "Full payment", "Regular installment",
	"", "", "", "",
}

// main populates the database with fixture clients and payment histories,
// going through the registration workflow so the last-payment pointers end up
// exactly as production traffic would leave them.
func main() {
	clients := flag.Int("clients", 40, "number of clients to generate")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(repos)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	seeded := 0
	for _, name := range generateNames(rng, *clients) {
		if err := seedClient(ctx, container, rng, name, now); err != nil {
			logger.Warn("Skipping client", slog.String("name", name), slog.String("error", err.Error()))
			continue
		}
		seeded++
	}

	logger.Info("Seed finished", slog.Int("clients", seeded))
}

// generateNames produces up to count unique uppercase full names.
func generateNames(rng *rand.Rand, count int) []string {
	seen := make(map[string]bool, count)
	names := make([]string, 0, count)
	for attempts := 0; len(names) < count && attempts < count*25; attempts++ {
		name := fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// seedClient registers a run of consecutive monthly payments for one client,
// with an occasional skipped month resolved through the confirmation
// protocol, the same way an operator would.
func seedClient(ctx context.Context, container *portssvc.ServiceContainer, rng *rand.Rand, name string, now time.Time) error {
	months := 1 + rng.Intn(12)
	period := domain.Period{Year: now.Year() - 1, Month: 1 + rng.Intn(12)}

	for i := 0; i < months; i++ {
		// Roughly one in ten payments skips a month, leaving a gap.
		if i > 0 && rng.Intn(10) == 0 {
			period = period.Next()
		}

		req := dto.RegisterPaymentRequest{
			Name:        name,
			Amount:      decimal.NewFromInt(int64(20000 + 500*rng.Intn(20))),
			Month:       period.Month,
			Year:        period.Year,
			Description: descriptions[rng.Intn(len(descriptions))],
		}

		result, err := container.Payment.RegisterPayment(ctx, req)
		if err != nil {
			return err
		}
		if result.NeedsConfirmation {
			req.SkipValidation = true
			if _, err := container.Payment.RegisterPayment(ctx, req); err != nil {
				return err
			}
		}

		period = period.Next()
	}
	return nil
}
