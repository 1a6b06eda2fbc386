package service

import (
	"context"
	"testing"

	"github.com/spec-kit/job-portal/internal/authz"
	"github.com/spec-kit/job-portal/internal/domain"
)

func TestListUsersFilterAndAuthorization(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(users)
	ctx := context.Background()

	users.add(&domain.User{Email: "a@test", Role: domain.RoleAdmin, IsActive: true})
	users.add(&domain.User{Email: "h@test", Role: domain.RoleHR, IsActive: true})
	users.add(&domain.User{Email: "s@test", Role: domain.RoleStudent, IsActive: true})

	admin := authz.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	all, err := svc.ListUsers(ctx, admin, nil)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	studentRole := domain.RoleStudent
	students, err := svc.ListUsers(ctx, admin, &studentRole)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 1 || students[0].Role != domain.RoleStudent {
		t.Fatalf("students = %+v", students)
	}

	bogus := domain.Role("manager")
	_, err = svc.ListUsers(ctx, admin, &bogus)
	if code := errCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}

	hr := authz.Actor{ID: "hr-1", Role: domain.RoleHR}
	_, err = svc.ListUsers(ctx, hr, nil)
	if code := errCode(t, err); code != "FORBIDDEN" {
		t.Fatalf("code = %q, want FORBIDDEN", code)
	}
}

func TestToggleActiveFlipsFlag(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(users)
	ctx := context.Background()

	user := users.add(&domain.User{Email: "s@test", Role: domain.RoleStudent, IsActive: true})
	admin := authz.Actor{ID: "admin-1", Role: domain.RoleAdmin}

	updated, err := svc.ToggleActive(ctx, admin, user.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected account deactivated")
	}

	updated, err = svc.ToggleActive(ctx, admin, user.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !updated.IsActive {
		t.Fatal("expected account reactivated")
	}

	_, err = svc.ToggleActive(ctx, admin, "missing")
	if code := errCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}

func TestDeleteUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(users)
	ctx := context.Background()

	user := users.add(&domain.User{Email: "s@test", Role: domain.RoleStudent, IsActive: true})
	admin := authz.Actor{ID: "admin-1", Role: domain.RoleAdmin}

	if err := svc.DeleteUser(ctx, admin, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := users.GetByID(ctx, user.ID); err == nil {
		t.Fatal("expected account removed")
	}

	err := svc.DeleteUser(ctx, admin, user.ID)
	if code := errCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}
