// 批量导入 docx 题库
//
// 知识点合集目录下的文件按文件名中的“第X章 章节名”确定章节，难度统一为 3；
// 练习目录下的文件统一归入“压强”章节，文件名含“简单”为 1、含“困难”为 5，其余为 3。
//
// 用法: go run scripts/import_docx.go -collection ./物理知识点合集 -practice ./压强练习 [-dry-run]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"physics_practice_backend/internal/config"
	"physics_practice_backend/internal/repository"
	"physics_practice_backend/internal/service"
	"physics_practice_backend/pkg/database"
	"physics_practice_backend/pkg/logger"
	"regexp"
	"syscall"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	collectionDir := flag.String("collection", "", "知识点合集目录")
	practiceDir := flag.String("practice", "", "练习题目录")
	pattern := flag.String("pattern", service.DefaultChapterPattern, "从文件名提取章节的正则，第一个分组为章节名")
	dryRun := flag.Bool("dry-run", false, "只解析不入库")
	workers := flag.Int("workers", 4, "并发处理的文件数")
	flag.Parse()

	if *collectionDir == "" && *practiceDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	chapterRe, err := regexp.Compile(*pattern)
	if err != nil {
		log.Fatalf("章节正则无效: %v", err)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, true)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	// 脚本不使用章节缓存，导入后由服务端缓存自然过期
	bank := service.NewQuestionBankService(
		repository.NewQuestionRepository(db),
		service.NewDocxParserService(&cfg.Parser),
		service.NewStorageService(cfg),
		nil,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := service.NewDocxBatchImporter(bank).Run(ctx, service.BatchImportOptions{
		CollectionDir:  *collectionDir,
		PracticeDir:    *practiceDir,
		ChapterPattern: chapterRe,
		DryRun:         *dryRun,
		Workers:        *workers,
	})
	if err != nil {
		log.Fatalf("导入中断: %v", err)
	}

	var files, parsed, imported, skipped int
	for _, r := range results {
		name := filepath.Base(r.File)
		switch {
		case r.Err != nil:
			skipped++
			fmt.Printf("✗ %s: %v\n", name, r.Err)
		case r.Skipped:
			skipped++
			fmt.Printf("- %s: 无法从文件名识别章节，已跳过\n", name)
		default:
			files++
			parsed += r.Parsed
			imported += r.Imported
			fmt.Printf("✓ %s [%s, 难度 %d]: 解析 %d 道，导入 %d 道\n", name, r.Chapter, r.Difficulty, r.Parsed, r.Imported)
		}
	}

	mode := "导入"
	if *dryRun {
		mode = "试运行"
	}
	fmt.Printf("\n%s完成：处理 %d 个文件，跳过 %d 个，解析 %d 道题目，入库 %d 道\n", mode, files, skipped, parsed, imported)
}
