// The init command lays down the config directory, default config file,
// data directory, and a starter corpus.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/horasat/internal/sqlite"
)

// starterCorpus is a minimal set of readings written on init so a fresh
// installation produces results immediately. Headings and bodies are in
// Thai, matching the corpus the engine is built for.
var starterCorpus = []string{
	`{"heading":"การงาน (อัตตะ:1)","body":"พึ่งพาตนเองเป็นหลัก การงานสำเร็จด้วยความมานะของตัวเอง","base":1,"position":1,"value":1,"category":"อัตตะ"}`,
	`{"heading":"การเงิน (หินะ:2)","body":"ระวังรายจ่ายเกินตัว เก็บออมให้สม่ำเสมอ","base":1,"position":2,"value":2,"category":"หินะ"}`,
	`{"heading":"ความรัก (ธานัง:3)","body":"ความรักมั่นคงขึ้นเมื่อฐานะมั่นคง ค่อยเป็นค่อยไป","base":1,"position":3,"value":3,"category":"ธานัง"}`,
	`{"heading":"ครอบครัว (ปิตา:4)","body":"ผู้ใหญ่ในบ้านให้การสนับสนุน เกื้อหนุนกันดี","base":1,"position":4,"value":4,"category":"ปิตา"}`,
	`{"heading":"สุขภาพ (มาตา:5)","body":"ดูแลสุขภาพของมารดาและตนเอง พักผ่อนให้เพียงพอ","base":1,"position":5,"value":5,"category":"มาตา"}`,
	`{"heading":"โชคลาภ (โภคา:6)","body":"มีเกณฑ์ได้ลาภจากงานที่ทำ ทรัพย์สินงอกเงย","base":1,"position":6,"value":6,"category":"โภคา"}`,
	`{"heading":"การเดินทาง (มัชฌิมา:7)","body":"การเดินทางราบรื่นปานกลาง วางแผนล่วงหน้า","base":1,"position":7,"value":7,"category":"มัชฌิมา"}`,
	`{"heading":"บริวาร (ตะนุ:1)","body":"บริวารให้คุณ มีผู้ช่วยเหลือในยามจำเป็น","base":2,"position":1,"value":1,"category":"ตะนุ"}`,
	`{"heading":"ทรัพย์สิน (กดุมภะ:2)","body":"การเงินหมุนเวียนคล่องตัวขึ้นในช่วงกลางปี","base":2,"position":2,"value":2,"category":"กดุมภะ"}`,
	`{"heading":"ญาติมิตร (สหัชชะ:3)","body":"เพื่อนฝูงนำโอกาสใหม่มาให้ รักษามิตรภาพไว้","base":2,"position":3,"value":3,"category":"สหัชชะ"}`,
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the config and data directories",
		Long: `Creates the configuration directory with a default config.yaml, the
data directory, and a starter reading corpus. Existing files are left
untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir := resolveConfigDir()
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return fmt.Errorf("creating config dir: %w", err)
			}
			if err := ensureDefaultConfigFile(configDir); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return fmt.Errorf("creating data dir: %w", err)
			}

			corpusPath := filepath.Join(cfg.DataDir, "readings.jsonl")
			wrote := false
			if _, err := os.Stat(corpusPath); os.IsNotExist(err) {
				records := make([]json.RawMessage, len(starterCorpus))
				for i, line := range starterCorpus {
					records[i] = json.RawMessage(line)
				}
				if err := sqlite.WriteCorpus(cfg.DataDir, records); err != nil {
					return fmt.Errorf("writing starter corpus: %w", err)
				}
				wrote = true
			}

			if flags.jsonMode {
				return printJSON(cmd, map[string]any{
					"config_dir":     configDir,
					"data_dir":       cfg.DataDir,
					"corpus_written": wrote,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config directory: %s\n", configDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Data directory:   %s\n", cfg.DataDir)
			if wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "Starter corpus written (%d readings)\n", len(starterCorpus))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Existing corpus kept")
			}
			return nil
		},
	}
}
