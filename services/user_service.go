package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"revista-editorial-api/models"

	"github.com/sirupsen/logrus"
)

// UserService talks to the external user directory. Lookups are batched:
// one round trip resolves every id a request needs.
type UserService interface {
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.DirectoryUser, error)
}

type userService struct {
	baseURL string
	client  *http.Client
	log     *logrus.Entry
}

func NewUserService(baseURL string) UserService {
	return &userService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     logrus.WithField("service", "user_directory"),
	}
}

func (s *userService) GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.DirectoryUser, error) {
	users := make(map[string]models.DirectoryUser)

	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return users, nil
	}

	endpoint := fmt.Sprintf("%s/api/Usuario/batch?ids=%s", s.baseURL, url.QueryEscape(strings.Join(unique, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.ErrorInternalServer{Message: fmt.Sprintf("user directory returned %d", resp.StatusCode)}
	}

	var payload []models.DirectoryUser
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	for _, u := range payload {
		users[u.ID] = u
	}

	if len(payload) < len(unique) {
		s.log.WithFields(logrus.Fields{"requested": len(unique), "resolved": len(payload)}).Debug("directory returned fewer users than requested")
	}
	return users, nil
}
