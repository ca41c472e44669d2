// Command seed carga datos de demo en una instancia de la API en marcha.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"petcare-api/internal/apiclient"
	"petcare-api/internal/platform/logger"

	"github.com/rs/zerolog"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "base URL de la API")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout por request")
	flag.Parse()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    "petcare-seed",
	})

	c, err := apiclient.New(*baseURL, *timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid api url")
	}

	if err := seed(context.Background(), c, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed done")
}

func seed(ctx context.Context, c *apiclient.Client, log zerolog.Logger) error {
	ownerID, err := create(ctx, c, apiclient.Clients, apiclient.ClientRecord{
		Roles: "owner", Name: "Ana", Surname: "García", Email: "ana@example.com",
		Password: "changeme", City: "Madrid", Description: "Dueña de Milo",
	})
	if err != nil {
		return err
	}

	carerID, err := create(ctx, c, apiclient.Clients, apiclient.ClientRecord{
		Roles: "carer", Name: "Luis", Surname: "Pérez", Email: "luis@example.com",
		Password: "changeme", City: "Madrid", Description: "Cuidador con 5 años de experiencia",
	})
	if err != nil {
		return err
	}

	petID, err := create(ctx, c, apiclient.Pets, apiclient.PetRecord{
		Name: "Milo", Description: "Mestizo, 3 años", OwnerID: ownerID,
	})
	if err != nil {
		return err
	}

	serviceID, err := create(ctx, c, apiclient.Services, apiclient.ServiceRecord{
		Title: "Paseo", Price: 12.5, Description: "Paseo de 30 minutos", CarerID: carerID,
	})
	if err != nil {
		return err
	}

	contractID, err := create(ctx, c, apiclient.Contracts, apiclient.ContractRecord{
		PetID: petID, ServiceID: serviceID, Date: time.Now().Format("2006-01-02"), Price: 12.5,
	})
	if err != nil {
		return err
	}

	log.Info().
		Int64("owner_id", ownerID).
		Int64("carer_id", carerID).
		Int64("pet_id", petID).
		Int64("service_id", serviceID).
		Int64("contract_id", contractID).
		Msg("demo records created")
	return nil
}

func create(ctx context.Context, c *apiclient.Client, res apiclient.Resource, in any) (int64, error) {
	if err := c.Create(ctx, res, in, nil); err != nil {
		return 0, err
	}
	return apiclient.LastID(ctx, c, res)
}
