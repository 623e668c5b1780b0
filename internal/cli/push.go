package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/bizmetrics-api/pkg/utils"
)

const (
	uploadPath    = "/api/data/upload"
	pushTimeout   = 30 * time.Second
	apiURLSetting = "api_url"
)

type PushCmd struct {
	v      *viper.Viper
	client *http.Client
}

// NewPushCmd envia um arquivo para o servidor. A URL vem de --api-url ou METRICSCTL_API_URL.
func NewPushCmd(v *viper.Viper) *cobra.Command {
	pc := &PushCmd{
		v:      v,
		client: &http.Client{Timeout: pushTimeout},
	}
	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Upload a metrics file to a running server",
		Args:  cobra.ExactArgs(1),
		RunE:  pc.run,
	}

	cmd.Flags().String("api-url", defaultAPIURL, "Base URL of the metrics API")
	_ = v.BindPFlag(apiURLSetting, cmd.Flags().Lookup("api-url"))

	return cmd
}

func (pc *PushCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	url := strings.TrimRight(pc.v.GetString(apiURLSetting), "/") + uploadPath

	body, err := utils.PostFile(ctx, pc.client, url, "file", filepath.Base(path), content)
	if len(body) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(body))
	}
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	return nil
}
