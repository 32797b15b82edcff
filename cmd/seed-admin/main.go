// Команда seed-admin создает администратора из ADMIN_EMAIL/ADMIN_PASSWORD. Повторный запуск
// ничего не меняет.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/jalsa-khata/internal/app"
	"github.com/fsdevblog/jalsa-khata/internal/config"
	"github.com/fsdevblog/jalsa-khata/internal/logger"
	"github.com/fsdevblog/jalsa-khata/internal/repository/pgrepo"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/service/psswd"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, conf.LogLevel).WithField("component", "seed-admin")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := pgrepo.Connect(ctx, conf.MigrationsDir, conf.DatabaseDSN, l)
	if err != nil {
		l.WithError(err).Fatal("connecting to database")
	}
	defer conn.Close()

	unitOfWork, err := app.InitUOW(conn)
	if err != nil {
		l.WithError(err).Fatal("init unit of work")
	}

	users, err := service.NewUserService(unitOfWork, nil, 0, psswd.PasswordHash(""))
	if err != nil {
		l.WithError(err).Fatal("init user service")
	}

	user, created, err := users.SeedAdmin(ctx, conf.AdminEmail, conf.AdminPassword)
	if err != nil {
		l.WithError(err).Fatal("seeding admin")
	}
	if created {
		l.WithField("email", user.Email).Info("admin created")
		return
	}
	l.WithField("email", user.Email).Info("admin already exists")
}
