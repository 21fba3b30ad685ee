package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"raffle/internal/application/raffle/usecases"
	"raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/infrastructure/config"
	"raffle/internal/infrastructure/database"
	"raffle/internal/infrastructure/persistence/seeds"
	"raffle/internal/infrastructure/repository"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/markdown"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sponsors, participants and raffles from a YAML file",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/fixtures.yaml", "Fixtures file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	fixtures, err := seeds.LoadFile(file)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()
	numbering, _ := valueobjects.ParseNumberingStrategy(cfg.Raffle.DefaultNumbering)
	createRaffle := usecases.NewCreateRaffleUseCase(
		repository.NewRaffleRepository(gdb),
		markdown.NewRenderer(),
		usecases.Settings{
			QuotaValue:       sharedvo.NewMoney(cfg.Raffle.QuotaValueCents, cfg.Raffle.Currency),
			DefaultNumbering: numbering,
		},
		log,
	)

	seeder := seeds.NewSeeder(
		repository.NewSponsorRepository(gdb),
		repository.NewParticipantRepository(gdb),
		createRaffle,
		log.Named("seeds"),
	)

	summary, err := seeder.Apply(context.Background(), fixtures)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", *summary)
	return nil
}
