package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the booking assistant",
		Long: "Send one message, or start an interactive conversation when no " +
			"message is given. The assistant may suggest stays to book.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return chatOnce(strings.Join(args, " "))
			}
			return chatLoop()
		},
	}
	cmd.AddCommand(chatHistoryCmd())
	return cmd
}

func chatOnce(message string) error {
	ctx, cancel := cmdContext()
	defer cancel()

	res, err := services.assistant.Send(ctx, message)
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(res)
	}
	printChatResult(res.Response, len(res.Hotels))
	for _, h := range res.Hotels {
		fmt.Printf("  - %s (stay %d)\n", h.Name, h.ID)
	}
	return nil
}

func chatLoop() error {
	fmt.Println("Chatting with the booking assistant. Empty line to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		if err := chatOnce(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printChatResult(response string, hotels int) {
	fmt.Println(response)
	if hotels > 0 {
		fmt.Printf("Suggested stays (%d):\n", hotels)
	}
}

func chatHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the current conversation transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			msgs, err := services.assistant.History(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(msgs)
			}
			if len(msgs) == 0 {
				fmt.Println("No conversation yet.")
				return nil
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s\n", m.Role, m.Content)
			}
			return nil
		},
	}
}
