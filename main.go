package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	negotiatorx "github.com/agrovaani/negotiation-agent/agent/agents/negotiator"
	catalogx "github.com/agrovaani/negotiation-agent/agent/catalog"
	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
	replyx "github.com/agrovaani/negotiation-agent/agent/reply"
	statex "github.com/agrovaani/negotiation-agent/agent/state"
	configx "github.com/agrovaani/negotiation-agent/pkg/config"
	_ "github.com/agrovaani/negotiation-agent/pkg/logger/autoload"
	openaix "github.com/agrovaani/negotiation-agent/pkg/openai"
)

func main() {
	var (
		customerName = flag.String("customer", "Ramesh Traders", "customer to negotiate with")
		productName  = flag.String("product", "Urea", "product under negotiation")
		channel      = flag.String("channel", statex.ChannelWeb, "chat channel: web, whatsapp or telecalling")
		sessionID    = flag.String("session", "", "session id (random when empty)")
	)

	openaiCfg := configx.MustNew[openaix.Config]("OPENAI")

	var generator contractx.ReplyGenerator = replyx.ScriptedGenerator{}
	if client := openaix.NewClient(*openaiCfg); client != nil {
		g, err := replyx.NewOpenAIGenerator(client, openaiCfg.Model, openaiCfg.Temperature)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build reply generator")
		}
		generator = g
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, using scripted replies")
	}

	catalog := loadCatalog()
	store := buildStore()

	agent, err := negotiatorx.New(store, catalog, generator)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build negotiator")
	}

	sid := strings.TrimSpace(*sessionID)
	if sid == "" {
		sid = uuid.NewString()
	}

	fmt.Printf("session=%s customer=%s product=%s channel=%s\n", sid, *customerName, *productName, *channel)
	fmt.Println("type a customer message, ctrl-d to quit")

	runREPL(agent, sid, *channel, *customerName, *productName)
}

func loadCatalog() contractx.Catalog {
	pgCfg := configx.MustNew[catalogx.PostgresConfig]("CATALOG_POSTGRES")
	if strings.TrimSpace(pgCfg.DSN) == "" {
		return catalogx.MustLoadSeed()
	}

	pg, err := catalogx.NewPostgresStore(*pgCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog database")
	}
	defer pg.Close()

	catalog, err := pg.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog from database")
	}
	log.Info().Msg("catalog loaded from postgres")
	return catalog
}

func buildStore() statex.Store {
	redisCfg := configx.MustNew[statex.UpstashRedisConfig]("SESSION_REDIS")
	if strings.TrimSpace(redisCfg.URL) == "" {
		return statex.NewMapStore()
	}

	store, err := statex.NewUpstashRedisStore(*redisCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build session store")
	}
	log.Info().Msg("session store backed by upstash redis")
	return store
}

func runREPL(agent *negotiatorx.Negotiator, sessionID, channel, customerName, productName string) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		res, err := agent.HandleTurn(context.Background(), negotiatorx.TurnRequest{
			SessionID:    sessionID,
			Channel:      channel,
			CustomerName: customerName,
			ProductName:  productName,
			Text:         text,
		})
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
			continue
		}

		fmt.Println(res.Reply)
		printTrace(res.Context)
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("stdin read failed")
	}
}

func printTrace(turnCtx contractx.TurnContext) {
	r := turnCtx.Reasoning
	fmt.Printf("  [%s] last=₹%d target=₹%d floor=₹%d cost=₹%d margin=₹%d tags=%s\n",
		turnCtx.Decision, r.LastPrice, r.TargetPrice, r.Floor, r.Cost, r.ExpectedMargin,
		strings.Join(turnCtx.Tags, ", "))
}
