package fakeapi

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Fixture entities served by the fake API. Shapes loosely follow what the
// real gateway returns; consumers treat them as opaque JSON anyway.
type (
	Chat struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Username    string `json:"username,omitempty"`
		Type        string `json:"type"`
		Archived    bool   `json:"archived"`
		Muted       bool   `json:"muted"`
		UnreadCount int    `json:"unread_count"`
	}

	Message struct {
		ID      int64     `json:"id"`
		ChatID  int64     `json:"chat_id"`
		FromID  int64     `json:"from_id"`
		Text    string    `json:"text"`
		ReplyTo int64     `json:"reply_to,omitempty"`
		Date    time.Time `json:"date"`
	}

	Contact struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name,omitempty"`
		Username  string `json:"username,omitempty"`
		Phone     string `json:"phone"`
	}

	User struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
		Username  string `json:"username"`
		Phone     string `json:"phone"`
	}

	Participant struct {
		UserID int64  `json:"user_id"`
		Name   string `json:"name"`
		Admin  bool   `json:"admin"`
		Title  string `json:"title,omitempty"`
		Banned bool   `json:"banned"`
	}

	Draft struct {
		ChatID  int64  `json:"chat_id"`
		Message string `json:"message"`
		ReplyTo int64  `json:"reply_to,omitempty"`
	}
)

// Store holds the fixture state behind the fake API. All methods are safe
// for concurrent use.
type Store struct {
	mu sync.RWMutex

	me           User
	chats        []*Chat
	messages     map[int64][]*Message
	contacts     []*Contact
	participants map[int64][]*Participant
	drafts       map[int64]*Draft

	nextChatID    int64
	nextMessageID int64
	nextContactID int64
}

// NewStore seeds a store with a handful of chats, messages and contacts so
// example scripts have something to talk to.
func NewStore() *Store {
	now := time.Now()

	s := &Store{
		me: User{
			ID:        1000,
			FirstName: "Local",
			Username:  "local_user",
			Phone:     "+15550100",
		},
		chats: []*Chat{
			{ID: 100, Name: "Saved Messages", Type: "private", Username: "local_user"},
			{ID: 200, Name: "Team Standup", Type: "group", UnreadCount: 3},
			{ID: 300, Name: "Release Notes", Type: "channel", Username: "release_notes"},
			{ID: 400, Name: "Old Project", Type: "group", Archived: true},
		},
		messages:     make(map[int64][]*Message),
		participants: make(map[int64][]*Participant),
		drafts:       make(map[int64]*Draft),
		contacts: []*Contact{
			{ID: 2001, FirstName: "Alice", LastName: "Nguyen", Username: "alice", Phone: "+15550101"},
			{ID: 2002, FirstName: "Bob", Username: "bob_k", Phone: "+15550102"},
		},
		nextChatID:    500,
		nextMessageID: 1,
		nextContactID: 2003,
	}

	s.participants[200] = []*Participant{
		{UserID: 1000, Name: "Local", Admin: true, Title: "owner"},
		{UserID: 2001, Name: "Alice"},
		{UserID: 2002, Name: "Bob"},
	}

	for i, text := range []string{
		"standup in 5",
		"shipping the draft endpoint today",
		"anyone seen the flaky health check?",
	} {
		s.messages[200] = append(s.messages[200], &Message{
			ID:     s.nextMessageID,
			ChatID: 200,
			FromID: []int64{2001, 2002, 2001}[i],
			Text:   text,
			Date:   now.Add(time.Duration(i-3) * time.Minute),
		})
		s.nextMessageID++
	}

	return s
}

// ResolvePeer turns a path identifier (numeric ID or @username) into a chat.
func (s *Store) ResolvePeer(id string) (*Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resolvePeerLocked(id)
}

func (s *Store) resolvePeerLocked(id string) (*Chat, error) {
	username := strings.TrimPrefix(id, "@")

	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		for _, c := range s.chats {
			if c.ID == n {
				return c, nil
			}
		}
		return nil, fmt.Errorf("chat %d not found", n)
	}

	for _, c := range s.chats {
		if c.Username != "" && c.Username == username {
			return c, nil
		}
	}
	return nil, fmt.Errorf("chat %s not found", id)
}

func (s *Store) Me() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.me
}

// Chats returns one page of chats.
func (s *Store) Chats(page, pageSize int) []*Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := (page - 1) * pageSize
	if start >= len(s.chats) {
		return []*Chat{}
	}
	end := start + pageSize
	if end > len(s.chats) {
		end = len(s.chats)
	}

	out := make([]*Chat, end-start)
	copy(out, s.chats[start:end])
	return out
}

// FilterChats applies the /chats/list filters.
func (s *Store) FilterChats(limit int, chatType string, archived, unreadOnly bool) []*Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Chat, 0, limit)
	for _, c := range s.chats {
		if c.Archived != archived {
			continue
		}
		if chatType != "" && c.Type != chatType {
			continue
		}
		if unreadOnly && c.UnreadCount == 0 {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Messages returns one page of a chat's history, oldest first.
func (s *Store) Messages(chatID int64, page, pageSize int) []*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.messages[chatID]

	start := (page - 1) * pageSize
	if start >= len(history) {
		return []*Message{}
	}
	end := start + pageSize
	if end > len(history) {
		end = len(history)
	}

	out := make([]*Message, end-start)
	copy(out, history[start:end])
	return out
}

func (s *Store) SendMessage(peer string, text string, replyTo int64) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return nil, err
	}

	msg := &Message{
		ID:      s.nextMessageID,
		ChatID:  chat.ID,
		FromID:  s.me.ID,
		Text:    text,
		ReplyTo: replyTo,
		Date:    time.Now(),
	}
	s.nextMessageID++
	s.messages[chat.ID] = append(s.messages[chat.ID], msg)

	return msg, nil
}

func (s *Store) EditMessage(peer string, messageID int64, newText string) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return nil, err
	}

	for _, m := range s.messages[chat.ID] {
		if m.ID == messageID {
			m.Text = newText
			return m, nil
		}
	}
	return nil, fmt.Errorf("message %d not found", messageID)
}

func (s *Store) DeleteMessage(peer string, messageID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return err
	}

	history := s.messages[chat.ID]
	for i, m := range history {
		if m.ID == messageID {
			s.messages[chat.ID] = append(history[:i], history[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("message %d not found", messageID)
}

func (s *Store) ForwardMessage(fromPeer, toPeer string, messageID int64) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.resolvePeerLocked(fromPeer)
	if err != nil {
		return nil, err
	}
	to, err := s.resolvePeerLocked(toPeer)
	if err != nil {
		return nil, err
	}

	for _, m := range s.messages[from.ID] {
		if m.ID == messageID {
			fwd := &Message{
				ID:     s.nextMessageID,
				ChatID: to.ID,
				FromID: s.me.ID,
				Text:   m.Text,
				Date:   time.Now(),
			}
			s.nextMessageID++
			s.messages[to.ID] = append(s.messages[to.ID], fwd)
			return fwd, nil
		}
	}
	return nil, fmt.Errorf("message %d not found", messageID)
}

func (s *Store) SearchMessages(peer, query string, limit int, fromUser string) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	out := make([]*Message, 0, limit)
	for _, m := range s.messages[chat.ID] {
		if !strings.Contains(strings.ToLower(m.Text), needle) {
			continue
		}
		if fromUser != "" && fromUser != strconv.FormatInt(m.FromID, 10) {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Contacts() []*Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *Store) SearchContacts(query string, limit int) []*Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimPrefix(query, "@"))
	out := make([]*Contact, 0, limit)
	for _, c := range s.contacts {
		haystack := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.Username)
		if !strings.Contains(haystack, needle) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (s *Store) AddContact(phone, firstName, lastName string) *Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := &Contact{
		ID:        s.nextContactID,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
	s.nextContactID++
	s.contacts = append(s.contacts, contact)

	return contact
}

func (s *Store) DeleteContact(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid contact id %q", id)
	}

	for i, c := range s.contacts {
		if c.ID == n {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("contact %d not found", n)
}

// UserStatus reports a canned online status for a known contact.
func (s *Store) UserStatus(id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q", id)
	}

	for _, c := range s.contacts {
		if c.ID == n {
			return map[string]any{
				"user_id":   c.ID,
				"status":    "online",
				"last_seen": time.Now().Format(time.RFC3339),
			}, nil
		}
	}
	return nil, fmt.Errorf("user %d not found", n)
}

func (s *Store) ResolveUsername(username string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username = strings.TrimPrefix(username, "@")

	for _, c := range s.chats {
		if c.Username == username {
			return c, nil
		}
	}
	for _, c := range s.contacts {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, fmt.Errorf("username %s not found", username)
}

func (s *Store) CreateGroup(title string, users []string) *Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := &Chat{
		ID:   s.nextChatID,
		Name: title,
		Type: "group",
	}
	s.nextChatID++
	s.chats = append(s.chats, chat)

	members := []*Participant{{UserID: s.me.ID, Name: s.me.FirstName, Admin: true, Title: "owner"}}
	for _, u := range users {
		if n, err := strconv.ParseInt(u, 10, 64); err == nil {
			members = append(members, &Participant{UserID: n, Name: u})
		}
	}
	s.participants[chat.ID] = members

	return chat
}

func (s *Store) InviteToGroup(peer string, userIDs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return 0, err
	}

	invited := 0
	for _, u := range userIDs {
		n, err := strconv.ParseInt(u, 10, 64)
		if err != nil {
			continue
		}
		s.participants[chat.ID] = append(s.participants[chat.ID], &Participant{UserID: n, Name: u})
		invited++
	}
	return invited, nil
}

func (s *Store) LeaveChat(peer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return err
	}

	for i, c := range s.chats {
		if c.ID == chat.ID {
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			break
		}
	}
	delete(s.participants, chat.ID)
	delete(s.messages, chat.ID)

	return nil
}

func (s *Store) Participants(peer string, limit, offset int) ([]*Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return nil, err
	}

	members := s.participants[chat.ID]
	if offset >= len(members) {
		return []*Participant{}, nil
	}
	end := offset + limit
	if end > len(members) {
		end = len(members)
	}

	out := make([]*Participant, end-offset)
	copy(out, members[offset:end])
	return out, nil
}

func (s *Store) Admins(peer string) ([]*Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return nil, err
	}

	out := []*Participant{}
	for _, p := range s.participants[chat.ID] {
		if p.Admin {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) PromoteAdmin(peer, userID, title string) error {
	return s.updateParticipant(peer, userID, func(p *Participant) {
		p.Admin = true
		p.Title = title
	})
}

func (s *Store) BanUser(peer, userID string) error {
	return s.updateParticipant(peer, userID, func(p *Participant) {
		p.Banned = true
	})
}

func (s *Store) UnbanUser(peer, userID string) error {
	return s.updateParticipant(peer, userID, func(p *Participant) {
		p.Banned = false
	})
}

func (s *Store) updateParticipant(peer, userID string, apply func(*Participant)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return err
	}

	n, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", userID)
	}

	for _, p := range s.participants[chat.ID] {
		if p.UserID == n {
			apply(p)
			return nil
		}
	}
	return fmt.Errorf("user %d is not a participant", n)
}

func (s *Store) InviteLink(peer string) (string, error) {
	chat, err := s.ResolvePeer(peer)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://t.me/+fake%d", chat.ID), nil
}

func (s *Store) SetMuted(peer string, muted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return err
	}
	chat.Muted = muted

	return nil
}

func (s *Store) SetArchived(peer string, archived bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return err
	}
	chat.Archived = archived

	return nil
}

func (s *Store) SaveDraft(peer, message string, replyTo int64) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return nil, err
	}

	draft := &Draft{ChatID: chat.ID, Message: message, ReplyTo: replyTo}
	s.drafts[chat.ID] = draft

	return draft, nil
}

func (s *Store) ClearDraft(peer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.resolvePeerLocked(peer)
	if err != nil {
		return err
	}
	delete(s.drafts, chat.ID)

	return nil
}
