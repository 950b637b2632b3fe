// Command-line REPL for chatting with a single agent against the local slot
// store.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"agentdash/agentdash/chat"
	"agentdash/agentdash/config"
	"agentdash/agentdash/registry"
	"agentdash/agentdash/services/responder"
	"agentdash/agentdash/sources/psql"
	"agentdash/agentdash/sources/psql/dao"
	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) < 2 || args[0] != "connect" {
		fmt.Println("agentchat usage:")
		fmt.Println("  agentchat connect <agent-id>   # chat with one agent (e.g. cicd, monitoring)")
		os.Exit(1)
	}

	agentID := types.AgentType(args[1])
	agent, ok := registry.Get(agentID)
	if !ok {
		fmt.Printf("unknown agent %q; known agents:\n", args[1])
		for _, a := range registry.All() {
			fmt.Printf("  %-16s %s\n", a.ID, a.Description)
		}
		os.Exit(1)
	}

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	slotDAO := dao.NewSlotDAO(db.DB)

	store := chat.NewStore(chat.LoadState(ctx, slotDAO), responder.New(cfg.AgentAPI), chat.Saver(slotDAO))
	logging.AppLogger.Info("agentchat session started", zap.String("agent", string(agentID)))

	fmt.Printf("\nConnected to %s (%s)\n\n", agent.Name, agent.Specialization)
	if history := store.Messages(agentID); len(history) > 0 {
		fmt.Printf("(%d earlier messages restored)\n\n", len(history))
	}
	fmt.Println("Try for example:")
	for _, prompt := range agent.ExamplePrompts {
		fmt.Println("  -", prompt)
	}
	fmt.Println()
	fmt.Println("Type your question, 'clear' to wipe this agent's history, or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", agentID)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}
		if line == "clear" {
			store.ClearHistory(agentID)
			fmt.Println("history cleared")
			continue
		}
		if line == "" {
			continue
		}

		_, done := store.Send(context.Background(), agentID, line)
		reply := <-done
		fmt.Println()
		fmt.Println(reply.Content)
		fmt.Println()
	}
}
