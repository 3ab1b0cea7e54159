package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/iec-registro/internal/application/ports"
	"github.com/jhoicas/iec-registro/internal/domain"
	"github.com/jhoicas/iec-registro/internal/domain/entity"
	"github.com/jhoicas/iec-registro/internal/domain/iec"
	"github.com/jhoicas/iec-registro/internal/domain/repository"
)

// maxUserIDAttempts intentos de inserción ante colisión de user_id (la PK es la garantía de unicidad).
const maxUserIDAttempts = 3

// Mensajes visibles para el llamador.
const (
	msgCodeRequired      = "IEC code is required"
	msgCodeTooLong       = "Invalid IEC code format"
	msgUserIDRequired    = "User ID is required"
	msgAlreadyRegistered = "This IEC code is already registered. Each IEC can only be registered once."
	msgUserNotFound      = "User not found"
)

// RegistrationUseCase orquesta el registro de un usuario contra un código IEC verificado:
// normalizar → unicidad → empresa (cache local o autoridad) → estado → user_id → vínculo → lectura unida.
type RegistrationUseCase struct {
	companies     repository.CompanyRepository
	registrations repository.RegistrationRepository
	verifier      ports.IECVerifier
	ids           iec.UserIDGenerator
	log           zerolog.Logger
}

// NewRegistrationUseCase construye el caso de uso con sus puertos.
func NewRegistrationUseCase(
	companies repository.CompanyRepository,
	registrations repository.RegistrationRepository,
	verifier ports.IECVerifier,
	ids iec.UserIDGenerator,
	log zerolog.Logger,
) *RegistrationUseCase {
	return &RegistrationUseCase{
		companies:     companies,
		registrations: registrations,
		verifier:      verifier,
		ids:           ids,
		log:           log,
	}
}

// Register registra un usuario nuevo para rawCode y devuelve el registro unido con su empresa.
// Si el vínculo falla después de crear la empresa, la empresa queda persistida (es idempotente por código).
func (uc *RegistrationUseCase) Register(ctx context.Context, rawCode string) (*entity.RegisteredUser, error) {
	code, err := normalizeCode(rawCode)
	if err != nil {
		return nil, err
	}
	log := uc.log.With().Str("iec_code", code).Logger()
	log.Info().Msg("iniciando registro")

	registered, err := uc.registrations.ExistsByCode(ctx, code)
	if err != nil {
		return nil, uc.classify(log, "verificar registro previo", err)
	}
	if registered {
		return nil, domain.Conflict(msgAlreadyRegistered)
	}

	company, _, err := uc.resolveCompany(ctx, log, code)
	if err != nil {
		return nil, err
	}

	if !company.IsActive() {
		log.Info().Str("status", company.Status).Msg("empresa no activa, registro rechazado")
		return nil, domain.Forbidden(fmt.Sprintf("Cannot register with this IEC code. Company status: %s", company.Status))
	}

	userID, err := uc.link(ctx, log, company)
	if err != nil {
		return nil, err
	}

	user, err := uc.registrations.FindByUserID(ctx, userID)
	if err != nil {
		return nil, uc.classify(log, "leer registro", err)
	}
	if user == nil {
		return nil, domain.Internal("registered user could not be read back", nil)
	}
	log.Info().Str("user_id", userID).Msg("registro completado")
	return user, nil
}

// GetUserDetails devuelve el registro unido de userID.
func (uc *RegistrationUseCase) GetUserDetails(ctx context.Context, userID string) (*entity.RegisteredUser, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.Validation(msgUserIDRequired)
	}
	user, err := uc.registrations.FindByUserID(ctx, userID)
	if err != nil {
		return nil, uc.classify(uc.log, "leer registro", err)
	}
	if user == nil {
		return nil, domain.NotFound(msgUserNotFound)
	}
	return user, nil
}

// VerifyCompany resuelve la empresa de rawCode (cache local o autoridad) sin registrar usuario.
// isNew indica si hubo que consultar a la autoridad.
func (uc *RegistrationUseCase) VerifyCompany(ctx context.Context, rawCode string) (company *entity.IECCompany, isNew bool, err error) {
	code, err := normalizeCode(rawCode)
	if err != nil {
		return nil, false, err
	}
	return uc.resolveCompany(ctx, uc.log.With().Str("iec_code", code).Logger(), code)
}

// normalizeCode valida el código antes de consultar a la autoridad o al almacén.
func normalizeCode(raw string) (string, error) {
	code := iec.Normalize(raw)
	if code == "" {
		return "", domain.Validation(msgCodeRequired)
	}
	if !iec.ValidLength(code) {
		return "", domain.Validation(msgCodeTooLong)
	}
	return code, nil
}

// resolveCompany usa el registro guardado si existe (sin re-verificar); si no, verifica contra la
// autoridad, persiste y relee la forma canónica almacenada.
func (uc *RegistrationUseCase) resolveCompany(ctx context.Context, log zerolog.Logger, code string) (*entity.IECCompany, bool, error) {
	existing, err := uc.companies.FindByCode(ctx, code)
	if err != nil {
		return nil, false, uc.classify(log, "buscar empresa", err)
	}
	if existing != nil {
		log.Debug().Msg("empresa ya verificada, se usa el registro local")
		return existing, false, nil
	}

	verified, err := uc.verifier.Verify(ctx, code)
	if err != nil {
		return nil, false, uc.classify(log, "verificar IEC", err)
	}
	verified.IECCode = code

	if err := uc.companies.Create(ctx, verified); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, false, uc.classify(log, "guardar empresa", err)
		}
		// Otra petición verificó el mismo código en paralelo: su fila es igual de válida.
		log.Warn().Msg("empresa creada concurrentemente, se reutiliza")
	}

	saved, err := uc.companies.FindByCode(ctx, code)
	if err != nil {
		return nil, false, uc.classify(log, "releer empresa", err)
	}
	if saved == nil {
		return nil, false, domain.Internal("company record missing after create", nil)
	}
	return saved, true, nil
}

// link crea el UserRegistration. Una colisión de user_id regenera el id; la constraint única
// sobre iec_code se traduce en AlreadyRegistered (carrera con otra petición por el mismo código).
func (uc *RegistrationUseCase) link(ctx context.Context, log zerolog.Logger, company *entity.IECCompany) (string, error) {
	for attempt := 1; attempt <= maxUserIDAttempts; attempt++ {
		userID, err := uc.ids.NewUserID()
		if err != nil {
			return "", uc.classify(log, "generar user_id", err)
		}
		reg := &entity.UserRegistration{
			UserID:             userID,
			IECCode:            company.IECCode,
			UserEmail:          company.Email,
			UserPhone:          company.Phone,
			VerificationStatus: entity.VerificationStatusVerified,
		}
		err = uc.registrations.Create(ctx, reg)
		switch {
		case err == nil:
			return userID, nil
		case errors.Is(err, domain.ErrCodeAlreadyRegistered):
			return "", domain.Conflict(msgAlreadyRegistered)
		case errors.Is(err, domain.ErrUserIDTaken):
			log.Warn().Str("user_id", userID).Int("attempt", attempt).Msg("colisión de user_id, se regenera")
		default:
			return "", uc.classify(log, "guardar registro", err)
		}
	}
	return "", domain.Internal("could not allocate a unique user id", nil)
}

// classify deja pasar los errores ya clasificados y envuelve el resto como internal con su mensaje.
func (uc *RegistrationUseCase) classify(log zerolog.Logger, op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		log.Warn().Str("op", op).Str("kind", string(de.Kind)).Msg(de.Message)
		return err
	}
	log.Error().Err(err).Str("op", op).Msg("fallo inesperado")
	return domain.Internal(err.Error(), err)
}
