package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"minishop/cmd/dbctl/commands"

	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// 失敗はstderrへ1行のJSONで出し、終了コード1
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := commands.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		l := zerolog.New(stderr).With().Timestamp().Logger()
		l.Error().Err(err).Msg("dbctl failed")
		return 1
	}
	return 0
}
