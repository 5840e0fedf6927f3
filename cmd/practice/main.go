// practice 是本地终端版的面试练习向导。
// 走和网页端同一套会话状态机：选岗位、答 5 题、回顾。
// 录音走本机 PulseAudio，转写走同一个服务商网关。
package main

import (
	"fmt"
	"log"
	"os"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	language   string
	position   string
)

var rootCmd = &cobra.Command{
	Use:   "practice",
	Short: "终端面试练习向导",
	Long:  "在终端里完成一轮面试练习：选择岗位，逐题作答（打字或录音转写），最后回顾全部回答。",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}

		logger.InitLogger(cfg.Server.Mode)

		w := newWizard(cfg, language)
		return w.run(cmd.Context(), position)
	},
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "列出可用的录音设备",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDevices(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "配置文件目录")
	rootCmd.Flags().StringVar(&language, "lang", "en", "显示语言 (en/zh)")
	rootCmd.Flags().StringVar(&position, "position", "", "直接指定练习岗位，跳过选择页")
	rootCmd.AddCommand(devicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}
