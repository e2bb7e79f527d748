package backend

import (
	"context"
	"strconv"

	"github.com/zaliyastore/shopit-gateway/models"
)

// AuthenticateUser exchanges a third-party identity token for an upstream
// session token plus the user record it resolves to.
func (c *Client) AuthenticateUser(ctx context.Context, idToken string) (models.User, string, error) {
	var result struct {
		models.User
		Token string `json:"token"`
	}
	_, err := c.post(ctx, "/authenticate-user/", "", map[string]string{"accessToken": idToken}, &result)
	return result.User, result.Token, err
}

func (c *Client) GetUser(ctx context.Context, token string) (models.User, error) {
	var user models.User
	_, err := c.get(ctx, "/user/", token, nil, &user)
	return user, err
}

// UserPage is one page of the admin customer listing.
type UserPage struct {
	Users      []models.User `json:"users"`
	TotalUsers int           `json:"totalUsers"`
}

func (c *Client) GetUsers(ctx context.Context, token string, page int, query string, sortRole models.Role) (UserPage, error) {
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if query != "" {
		params["query"] = query
	}
	if sortRole != "" {
		params["sortRole"] = string(sortRole)
	}
	var pageData UserPage
	_, err := c.get(ctx, "/users/", token, params, &pageData)
	return pageData, err
}

type EditAddressRequest struct {
	AsAdmin bool   `json:"asAdmin"`
	UserID  string `json:"userId,omitempty"`
	State   string `json:"state"`
	LGA     string `json:"lga"`
}

func (c *Client) EditAddress(ctx context.Context, token string, req EditAddressRequest) (models.User, error) {
	var user models.User
	_, err := c.post(ctx, "/edit-address/", token, req, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, token, userID string) (string, error) {
	return c.delete(ctx, "/user/"+userID+"/", token)
}

func (c *Client) AssignModerator(ctx context.Context, token, userID string) (string, error) {
	return c.post(ctx, "/assign-moderator/"+userID+"/", token, nil, nil)
}

func (c *Client) JoinNewsletter(ctx context.Context, email string) (string, error) {
	return c.post(ctx, "/join-newsletter/", "", map[string]string{"email": email}, nil)
}

// ExpensePoint is one slice of a customer's per-collection spend insight.
type ExpensePoint struct {
	Collection  string  `json:"collection"`
	AmountSpent float64 `json:"amountSpent"`
}

type ExpenseInsight struct {
	ExpenseInsight []ExpensePoint `json:"expenseInsight"`
	TotalSpent     float64        `json:"totalSpent"`
}

func (c *Client) GetExpenseInsight(ctx context.Context, token string) (ExpenseInsight, error) {
	var insight ExpenseInsight
	_, err := c.get(ctx, "/expense-insight/", token, nil, &insight)
	return insight, err
}
