package service

import (
	"strings"
	"sync"
	"time"
)

const defaultSessionTTL = 12 * time.Hour

// cartSession 单个会话条目
type cartSession struct {
	store     *CartStore
	expiresAt time.Time
}

// CartSessionManager 按会话 ID 管理购物车实例。
// 会话状态只存活于进程内存，不跨进程、不落盘；
// 过期条目在访问时惰性清理，不起后台任务。
type CartSessionManager struct {
	mu       sync.Mutex
	sessions map[string]*cartSession
	ttl      time.Duration
	now      func() time.Time
}

// NewCartSessionManager 创建会话管理器
func NewCartSessionManager(ttl time.Duration) *CartSessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &CartSessionManager{
		sessions: make(map[string]*cartSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get 获取会话购物车，不存在或已过期时创建新实例。
// 每次访问顺延过期时间。
func (m *CartSessionManager) Get(sessionID string) *CartStore {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return NewCartStore()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.pruneLocked(now)

	if session, ok := m.sessions[sessionID]; ok {
		session.expiresAt = now.Add(m.ttl)
		return session.store
	}

	store := NewCartStore()
	m.sessions[sessionID] = &cartSession{
		store:     store,
		expiresAt: now.Add(m.ttl),
	}
	return store
}

// Drop 主动丢弃会话
func (m *CartSessionManager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Len 当前存活会话数
func (m *CartSessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked(m.now())
	return len(m.sessions)
}

func (m *CartSessionManager) pruneLocked(now time.Time) {
	for id, session := range m.sessions {
		if now.After(session.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
