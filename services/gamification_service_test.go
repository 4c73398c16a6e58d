package services

import (
	"errors"
	"testing"

	"github.com/franciscofornicola/rede-alerta/config"

	"gorm.io/gorm"
)

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{999, 10},
		{1000, 11},
	}
	for _, tc := range cases {
		if got := LevelForPoints(tc.points); got != tc.level {
			t.Errorf("LevelForPoints(%d) = %d, esperado %d", tc.points, got, tc.level)
		}
	}
}

func TestAwardPointsRecomputesLevel(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")

	updated, err := AwardPoints(user.ID, 250)
	if err != nil {
		t.Fatalf("award points: %v", err)
	}
	if updated.Points != 250 {
		t.Errorf("points = %d, esperado 250", updated.Points)
	}
	if updated.Level != 3 {
		t.Errorf("level = %d, esperado 3", updated.Level)
	}

	persisted := reloadUser(t, user.ID)
	if persisted.Points != 250 || persisted.Level != 3 {
		t.Errorf("persisted points/level = %d/%d, esperado 250/3", persisted.Points, persisted.Level)
	}
}

func TestAwardPointsUserNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := AwardPoints(9999, 10)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, esperado gorm.ErrRecordNotFound", err)
	}
}

// The direct points grant does not re-run achievement evaluation; only the
// alert-creation path does.
func TestAwardPointsDoesNotEvaluateAchievements(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")
	ach := createTestAchievement(t, "Contribuidor", 50)

	if _, err := AwardPoints(user.ID, 100); err != nil {
		t.Fatalf("award points: %v", err)
	}

	if n := countHoldings(t, user.ID, ach.ID); n != 0 {
		t.Errorf("holdings = %d, esperado 0 (grant direto não avalia conquistas)", n)
	}
}

func TestEvaluateAchievementsIsIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")
	ach := createTestAchievement(t, "Primeiros Passos", 25)

	user.Points = 30
	for i := 0; i < 3; i++ {
		if err := EvaluateAchievements(config.DB, user); err != nil {
			t.Fatalf("evaluate #%d: %v", i+1, err)
		}
	}

	if n := countHoldings(t, user.ID, ach.ID); n != 1 {
		t.Errorf("holdings = %d, esperado exatamente 1", n)
	}
}

func TestEvaluateAchievementsThresholds(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")
	a := createTestAchievement(t, "A", 0)
	b := createTestAchievement(t, "B", 50)

	// brand-new user qualifies for A immediately, not B
	if err := EvaluateAchievements(config.DB, user); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if n := countHoldings(t, user.ID, a.ID); n != 1 {
		t.Errorf("A holdings = %d, esperado 1", n)
	}
	if n := countHoldings(t, user.ID, b.ID); n != 0 {
		t.Errorf("B holdings = %d, esperado 0", n)
	}

	user.Points = 50
	if err := EvaluateAchievements(config.DB, user); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if n := countHoldings(t, user.ID, b.ID); n != 1 {
		t.Errorf("B holdings após 50 pontos = %d, esperado 1", n)
	}
}

// Three alert submissions: points climb 10 at a time, the 25-point
// achievement unlocks on the third and never duplicates.
func TestAlertSubmissionScenario(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")
	ach := createTestAchievement(t, "Quase Lá", 25)

	for i, wantPoints := range []int{10, 20, 30} {
		_, err := CreateAlert(user.ID, AlertInput{Type: "Alagamento", Description: "rua alagada"})
		if err != nil {
			t.Fatalf("create alert #%d: %v", i+1, err)
		}

		u := reloadUser(t, user.ID)
		if u.Points != wantPoints {
			t.Errorf("after alert #%d: points = %d, esperado %d", i+1, u.Points, wantPoints)
		}
		if u.Level != 1 {
			t.Errorf("after alert #%d: level = %d, esperado 1", i+1, u.Level)
		}

		held := countHoldings(t, user.ID, ach.ID)
		if wantPoints < 25 && held != 0 {
			t.Errorf("after alert #%d: conquista já concedida com %d pontos", i+1, wantPoints)
		}
		if wantPoints >= 25 && held != 1 {
			t.Errorf("after alert #%d: holdings = %d, esperado 1", i+1, held)
		}
	}
}

func TestGrantAchievementCreditsPointsOnce(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")
	ach := createTestAchievement(t, "Ajudante Local", 150)

	updated, err := GrantAchievement(user.ID, ach.ID)
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if updated.Points != 150 {
		t.Errorf("points = %d, esperado 150", updated.Points)
	}
	if updated.Level != 2 {
		t.Errorf("level = %d, esperado 2", updated.Level)
	}

	_, err = GrantAchievement(user.ID, ach.ID)
	if !errors.Is(err, ErrAchievementHeld) {
		t.Fatalf("segundo grant: err = %v, esperado ErrAchievementHeld", err)
	}

	persisted := reloadUser(t, user.ID)
	if persisted.Points != 150 {
		t.Errorf("points após conflito = %d, esperado 150 (sem crédito duplo)", persisted.Points)
	}
	if n := countHoldings(t, user.ID, ach.ID); n != 1 {
		t.Errorf("holdings = %d, esperado 1", n)
	}
}

func TestGrantAchievementNotFound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Maria", "maria@example.com")

	if _, err := GrantAchievement(user.ID, 4242); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, esperado gorm.ErrRecordNotFound", err)
	}
}
