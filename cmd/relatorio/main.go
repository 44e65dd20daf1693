package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	request "compras_xpto/internal/adapter/http/dto/request"
	"compras_xpto/internal/adapter/persistence/repository"
	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/infrastructure/clock"
	"compras_xpto/internal/infrastructure/config"
	"compras_xpto/internal/infrastructure/database"
	"compras_xpto/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func main() {
	app := &cli.App{
		Name:  "relatorio",
		Usage: "prints the procurement dashboard for a period and filter selection",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "periodo", Value: string(analytics.DefaultPeriod), Usage: "7d, 30d, mes, 3m, 6m, 1y or all"},
			&cli.StringFlag{Name: "filtros", Usage: "YAML file with empresas, setores, status, centros_custo and compradores"},
			&cli.StringSliceFlag{Name: "empresa"},
			&cli.StringSliceFlag{Name: "setor"},
			&cli.StringSliceFlag{Name: "status"},
			&cli.StringSliceFlag{Name: "centro-custo"},
			&cli.StringSliceFlag{Name: "comprador"},
			&cli.StringFlag{Name: "formato", Value: "json", Usage: "json or yaml"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("relatorio failed")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.ConfigureLogging(cfg)

	filters, err := loadFilters(c.String("filtros"))
	if err != nil {
		return err
	}
	flagFilters, err := request.FiltersQuery{
		Empresas:     c.StringSlice("empresa"),
		Setores:      c.StringSlice("setor"),
		Status:       c.StringSlice("status"),
		CentrosCusto: c.StringSlice("centro-custo"),
		Compradores:  c.StringSlice("comprador"),
	}.ToFilters()
	if err != nil {
		return errors.Wrap(err, "invalid filter flags")
	}
	filters = mergeFilters(filters, flagFilters)

	ddb := database.ConnectDynamoDB(cfg)
	repo := repository.NewRequisicaoDynamoRepository(ddb, cfg.RequisicoesTable, cfg.ValorHistoricoTable)
	uc := usecase.NewAnalyticsUseCase(repo, clock.SystemClock{})

	res, err := uc.Compute(context.Background(), filters, analytics.ParsePeriod(c.String("periodo")))
	if err != nil {
		return err
	}
	return render(os.Stdout, res, c.String("formato"))
}

func loadFilters(path string) (analytics.Filters, error) {
	var f analytics.Filters
	if strings.TrimSpace(path) == "" {
		return f, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrapf(err, "read filters file %s", path)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, errors.Wrapf(err, "parse filters file %s", path)
	}
	return f, nil
}

// mergeFilters adds the flag selections to the file selections.
func mergeFilters(base, extra analytics.Filters) analytics.Filters {
	base.Empresas = append(base.Empresas, extra.Empresas...)
	base.Setores = append(base.Setores, extra.Setores...)
	base.Status = append(base.Status, extra.Status...)
	base.CentrosCusto = append(base.CentrosCusto, extra.CentrosCusto...)
	base.Compradores = append(base.Compradores, extra.Compradores...)
	return base
}

func render(w io.Writer, res analytics.Result, format string) error {
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode result")
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case "yaml", "yml":
		// Round-trip through JSON so YAML keys match the API field names.
		var doc interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return errors.Wrap(err, "convert result")
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
