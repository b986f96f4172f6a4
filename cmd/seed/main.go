package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var groupID int64
	var emailDomainName string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机组和员工, 2: 插入班种, 3: 插入节假日和工作日, 4: 插入随机请假记录)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&groupID, "group-id", 0, "随机插入请假记录的组 ID")
	flag.StringVar(&emailDomainName, "email-domain", "example.com", "随机员工邮箱的域名")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		seed.SeedGroupsWithEmployees(repo, n, emailDomainName)
	case 2:
		seed.SeedShiftTypes(repo)
	case 3:
		seed.SeedCalendar(repo)
	case 4:
		if groupID == 0 {
			logger.Error("请通过 -group-id 指定组")
			os.Exit(1)
		}
		seed.SeedTimeOffs(repo, groupID, n)
	default:
		logger.Error("未知的操作", slog.Int("op", op))
		os.Exit(1)
	}
}
