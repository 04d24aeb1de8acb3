package cache

import (
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%d"
	taskKeyPrefix = "task:%d"
	statsKey      = "stats"
)

const (
	UserTTL  = 5 * time.Minute
	TaskTTL  = 5 * time.Minute
	StatsTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func TaskKey(taskID uint) string {
	return fmt.Sprintf(taskKeyPrefix, taskID)
}

func StatsKey() string {
	return statsKey
}
