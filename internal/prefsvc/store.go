package prefsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/decker502/portaltour/pkg/session"
)

// Store 引导进度的 sqlite 存储
//
// 进度记录按用户名存储，首次读取时隐式存在（返回默认的未完成进度），
// 服务从不删除记录。
type Store struct {
	db *sql.DB
}

// OpenStore 打开（必要时创建）sqlite 数据库并执行迁移
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate 建表
func (s *Store) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS tour_progress (
			username TEXT PRIMARY KEY,
			tour_completed INTEGER NOT NULL DEFAULT 0,
			tour_step INTEGER NOT NULL DEFAULT 0,
			updated_utc TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate tour_progress: %w", err)
		}
	}
	return nil
}

// GetProgress 读取用户的引导进度
// 记录不存在时返回默认进度（未完成、第 0 步），不报错
func (s *Store) GetProgress(ctx context.Context, username string) (session.TourProgress, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT tour_completed, tour_step FROM tour_progress WHERE username = ?`, username)

	var completed int
	var step int
	if err := row.Scan(&completed, &step); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.TourProgress{}, nil
		}
		return session.TourProgress{}, fmt.Errorf("query tour progress: %w", err)
	}
	return session.TourProgress{Completed: completed != 0, Step: step}, nil
}

// UpsertProgress 写入用户的引导进度（整条覆盖）
func (s *Store) UpsertProgress(ctx context.Context, username string, progress session.TourProgress) error {
	completed := 0
	if progress.Completed {
		completed = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tour_progress (username, tour_completed, tour_step, updated_utc)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
		   tour_completed = excluded.tour_completed,
		   tour_step = excluded.tour_step,
		   updated_utc = excluded.updated_utc`,
		username, completed, progress.Step, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert tour progress: %w", err)
	}
	return nil
}
