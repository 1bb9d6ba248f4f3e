package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/config"
	"tattoohub/internal/database"
	"tattoohub/internal/domain"
	"tattoohub/internal/logger"
	"tattoohub/internal/pkg/password"
	"tattoohub/internal/repository"
)

var styles = []domain.TattooStyle{
	{Name: "American Traditional", Description: "Bold outlines, limited palette, classic flash motifs"},
	{Name: "Neo Traditional", Description: "Traditional foundations with richer color and detail"},
	{Name: "Japanese", Description: "Irezumi: koi, dragons, waves and full sleeves"},
	{Name: "Blackwork", Description: "Solid black ink, patterns and heavy fills"},
	{Name: "Fine Line", Description: "Thin single-needle linework"},
	{Name: "Realism", Description: "Photorealistic portraits and scenes"},
	{Name: "Watercolor", Description: "Soft washes of color without hard outlines"},
	{Name: "Tribal", Description: "Black geometric forms rooted in Polynesian and Maori work"},
	{Name: "Geometric", Description: "Shapes, mandalas and dotwork patterns"},
	{Name: "Lettering", Description: "Script and custom typography"},
	{Name: "Trash Polka", Description: "Red and black collage with realism and abstract strokes"},
	{Name: "Dotwork", Description: "Images built entirely from stippling"},
}

type demoUser struct {
	email    string
	userType domain.UserType
}

var demoUsers = []demoUser{
	{"artist@tattoohub.dev", domain.UserTypeArtist},
	{"studio@tattoohub.dev", domain.UserTypeStudio},
	{"client@tattoohub.dev", domain.UserTypeClient},
}

const demoPassword = "tattoo123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.AppName, cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}

	ctx := context.Background()

	if err := repository.NewStyleRepository(db).Upsert(ctx, styles); err != nil {
		log.WithError(err).Fatal("seed tattoo styles")
	}
	log.WithField("count", len(styles)).Info("tattoo styles seeded")

	if !cfg.IsDevelopment() {
		log.Info("skipping demo users outside development")
		return
	}

	users := repository.NewUserRepository(db)
	hash, err := password.Hash(demoPassword, cfg.BcryptRounds)
	if err != nil {
		log.WithError(err).Fatal("hash demo password")
	}

	created := make(map[domain.UserType]*domain.User, len(demoUsers))
	for _, d := range demoUsers {
		u, err := users.FindByEmail(ctx, d.email)
		if err != nil {
			log.WithError(err).Fatal("lookup demo user")
		}
		if u == nil {
			u = &domain.User{Email: d.email, PasswordHash: hash, UserType: d.userType}
			if err := users.Create(ctx, u); err != nil && !errors.Is(err, repository.ErrDuplicate) {
				log.WithError(err).Fatal("create demo user")
			}
			log.WithFields(logrus.Fields{"email": d.email, "password": demoPassword}).Info("demo user created")
		}
		created[d.userType] = u
	}

	seedProfiles(ctx, log, repository.NewArtistRepository(db), repository.NewStudioRepository(db), repository.NewClientRepository(db), created)
}

func seedProfiles(
	ctx context.Context,
	log logrus.FieldLogger,
	artists *repository.ArtistRepository,
	studios *repository.StudioRepository,
	clients *repository.ClientRepository,
	users map[domain.UserType]*domain.User,
) {
	if u := users[domain.UserTypeArtist]; u != nil {
		existing, err := artists.FindByUserID(ctx, u.ID)
		if err != nil {
			log.WithError(err).Fatal("lookup demo artist")
		}
		if existing == nil {
			a := &domain.Artist{
				UserID:       u.ID,
				FullName:     "Demo Artist",
				Biography:    "Traditional and neo traditional work, walk-ins on Fridays.",
				TattooStyles: []string{"American Traditional", "Neo Traditional"},
				Workplaces:   []string{"Black Anchor Tattoo"},
				Portfolio:    []domain.Image{},
			}
			if err := artists.Create(ctx, a); err != nil {
				log.WithError(err).Fatal("create demo artist")
			}
		}
	}

	if u := users[domain.UserTypeStudio]; u != nil {
		existing, err := studios.FindByOwner(ctx, u.ID)
		if err != nil {
			log.WithError(err).Fatal("lookup demo studio")
		}
		if existing == nil {
			s := &domain.Studio{
				Name:        "Black Anchor Tattoo",
				Owners:      []string{u.ID},
				Description: "Private studio, appointments only.",
				Photos:      []domain.Image{},
				Location:    domain.Location{City: "Lisbon", Country: "Portugal"},
				BusinessHours: []domain.BusinessHours{
					{Day: "monday", Closed: true},
					{Day: "tuesday", Open: "11:00", Close: "19:00"},
					{Day: "wednesday", Open: "11:00", Close: "19:00"},
					{Day: "thursday", Open: "11:00", Close: "19:00"},
					{Day: "friday", Open: "11:00", Close: "21:00"},
					{Day: "saturday", Open: "12:00", Close: "18:00"},
					{Day: "sunday", Closed: true},
				},
			}
			if err := studios.Create(ctx, s); err != nil {
				log.WithError(err).Fatal("create demo studio")
			}
		}
	}

	if u := users[domain.UserTypeClient]; u != nil {
		existing, err := clients.FindByUserID(ctx, u.ID)
		if err != nil {
			log.WithError(err).Fatal("lookup demo client")
		}
		if existing == nil {
			if err := clients.Create(ctx, &domain.Client{UserID: u.ID, FullName: "Demo Client"}); err != nil {
				log.WithError(err).Fatal("create demo client")
			}
		}
	}
	log.Info("demo profiles seeded")
}
