package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
)

// ApplicationService очередь заявок на подключение дилеров.
type ApplicationService struct {
	uow       uow.UOW
	appRepo   ApplicationRepository
	ledger    *LedgerService
	phones    PhoneNormalizer
	publisher Publisher
}

func NewApplicationService(
	u uow.UOW,
	ledger *LedgerService,
	phones PhoneNormalizer,
	publisher Publisher,
) (*ApplicationService, error) {
	appRepo, err := uow.GetRepositoryAs[ApplicationRepository](u, uow.RepositoryName(repoargs.ApplicationRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ApplicationService{uow: u, appRepo: appRepo, ledger: ledger, phones: phones, publisher: publisher}, nil
}

type SubmitApplicationArgs struct {
	Name     string
	ShopName string
	Phone    string
	City     string
	GSTIN    string
	Volume   string
}

// Submit принимает заявку с сайта. Повторная заявка с того же телефона дает domain.ErrDuplicateKey.
func (a *ApplicationService) Submit(ctx context.Context, args SubmitApplicationArgs) (*domain.Application, error) {
	phone, err := a.phones.Normalize(args.Phone)
	if err != nil {
		return nil, fmt.Errorf("submitting application: %w", err)
	}
	create := repoargs.CreateApplication{
		Name:     strings.TrimSpace(args.Name),
		ShopName: strings.TrimSpace(args.ShopName),
		Phone:    phone,
		City:     strings.TrimSpace(args.City),
		GSTIN:    strings.ToUpper(strings.TrimSpace(args.GSTIN)),
		Volume:   strings.TrimSpace(args.Volume),
	}
	if create.Name == "" || create.ShopName == "" || create.City == "" {
		return nil, fmt.Errorf("submitting application: %w",
			domain.InvalidArgumentf("name, shop name and city are required"))
	}

	application, err := a.appRepo.Create(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("submitting application: %w", err)
	}
	a.publisher.Publish(ctx, domain.EventNewApplication, application)
	return application, nil
}

func (a *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	applications, err := a.appRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return applications, nil
}

type UpdateApplicationArgs struct {
	ID         int64
	Status     domain.ApplicationStatus
	AdminNotes *string
}

// UpdateStatus меняет статус заявки. Перевод в Approved равносилен Approve.
// Одобренную заявку изменить нельзя.
func (a *ApplicationService) UpdateStatus(
	ctx context.Context,
	args UpdateApplicationArgs,
) (*domain.Application, *domain.Dealer, error) {
	if !args.Status.IsValid() {
		return nil, nil, fmt.Errorf("updating application %d: %w", args.ID,
			domain.InvalidArgumentf("unknown application status %q", args.Status))
	}
	if args.Status == domain.ApplicationApproved {
		return a.Approve(ctx, args.ID, args.AdminNotes)
	}

	var application *domain.Application
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[ApplicationRepository](tx, uow.RepositoryName(repoargs.ApplicationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		current, err := repo.FindByIDForUpdate(c, args.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if current.Status == domain.ApplicationApproved {
			return domain.InvalidArgumentf("application %d is already approved", args.ID)
		}
		application, err = repo.Update(c, repoargs.UpdateApplication{
			ID:         current.ID,
			Status:     args.Status,
			AdminNotes: notesOrCurrent(args.AdminNotes, current.AdminNotes),
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("updating application %d: %w", args.ID, txErr)
	}
	return application, nil, nil
}

// Approve создает ровно одного дилера по заявке и помечает ее одобренной в одной транзакции.
// Город заявки становится адресом дилера.
func (a *ApplicationService) Approve(
	ctx context.Context,
	id int64,
	adminNotes *string,
) (*domain.Application, *domain.Dealer, error) {
	var application *domain.Application
	var dealer *domain.Dealer
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[ApplicationRepository](tx, uow.RepositoryName(repoargs.ApplicationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		current, err := repo.FindByIDForUpdate(c, id)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if current.Status == domain.ApplicationApproved {
			return domain.InvalidArgumentf("application %d is already approved", id)
		}

		dealer, err = a.ledger.createDealerInTx(c, tx, CreateDealerArgs{
			Name:     current.Name,
			ShopName: current.ShopName,
			Location: current.City,
			Phone:    current.Phone,
			GSTIN:    current.GSTIN,
		})
		if err != nil {
			return err
		}

		application, err = repo.Update(c, repoargs.UpdateApplication{
			ID:         current.ID,
			Status:     domain.ApplicationApproved,
			AdminNotes: notesOrCurrent(adminNotes, current.AdminNotes),
			DealerID:   &dealer.ID,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("approving application %d: %w", id, txErr)
	}

	a.publisher.Publish(ctx, domain.EventDealerUpdated, dealer)
	return application, dealer, nil
}

func notesOrCurrent(notes *string, current string) string {
	if notes == nil {
		return current
	}
	return strings.TrimSpace(*notes)
}
