package erp_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	"github.com/GeovaneMT/LavaCar/internal/brgen"
	adminctl "github.com/GeovaneMT/LavaCar/internal/db/controller/admin"
	attachmentctl "github.com/GeovaneMT/LavaCar/internal/db/controller/attachment"
	breakdownctl "github.com/GeovaneMT/LavaCar/internal/db/controller/breakdown"
	customerctl "github.com/GeovaneMT/LavaCar/internal/db/controller/customer"
	notificationctl "github.com/GeovaneMT/LavaCar/internal/db/controller/notification"
	phonectl "github.com/GeovaneMT/LavaCar/internal/db/controller/phone"
	vehiclectl "github.com/GeovaneMT/LavaCar/internal/db/controller/vehicle"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/erp"
	"github.com/GeovaneMT/LavaCar/internal/events"
	notificationsvc "github.com/GeovaneMT/LavaCar/internal/notification"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// fixture wires the full service stack over an in-memory database.
type fixture struct {
	erp           *erp.Service
	notifications *notificationsvc.Service
	inbox         *notificationctl.Store
	phones        *phonectl.Store

	admin    *models.Admin
	customer *models.Customer
	other    *models.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(gormsqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.Phone{},
		&models.CustomerVehicle{},
		&models.VehicleBreakdown{},
		&models.Attachment{},
		&models.BreakdownAttachment{},
		&models.Notification{},
	))

	admin, err := models.NewAdmin("Admin", "admin@lavacar.test", "admin-secret")
	require.NoError(t, err)
	require.NoError(t, db.Create(admin).Error)

	customer, err := models.NewCustomer("Maria", "maria@lavacar.test", "maria-secret")
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)

	other, err := models.NewCustomer("Joao", "joao@lavacar.test", "joao-secret")
	require.NoError(t, err)
	require.NoError(t, db.Create(other).Error)

	admins := adminctl.NewStore(db)
	customers := customerctl.NewStore(db)
	phones := phonectl.NewStore(db)
	vehicles := vehiclectl.NewStore(db)
	breakdowns := breakdownctl.NewStore(db)
	attachments := attachmentctl.NewStore(db)
	inbox := notificationctl.NewStore(db)

	policySvc := policy.NewService(admins, customers, ability.DefaultRegistry())

	bus := events.NewBus()
	notifications := notificationsvc.NewService(inbox, policySvc)
	notificationsvc.NewOnVehicleBreakdownCreated(vehicles, notifications).Register(bus)

	return &fixture{
		erp: erp.NewService(
			admins, customers, phones, vehicles, breakdowns, attachments, policySvc, bus),
		notifications: notifications,
		inbox:         inbox,
		phones:        phones,
		admin:         admin,
		customer:      customer,
		other:         other,
	}
}

func (f *fixture) createVehicle(t *testing.T) *models.CustomerVehicle {
	t.Helper()

	vehicle, err := f.erp.CreateCustomerVehicle(context.Background(), erp.CreateCustomerVehicleRequest{
		CurrentUserID: f.customer.ID,
		CustomerID:    f.customer.ID,
		Type:          models.VehicleTypeCar,
		Plate:         brgen.MercosulPlate(),
		Model:         "Fiat Argo",
		Year:          "2021",
	})
	require.NoError(t, err)

	return vehicle
}

func TestRegisterCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer, err := f.erp.RegisterCustomer(ctx, erp.RegisterCustomerRequest{
		Name:     "Ana",
		Email:    "ana@lavacar.test",
		Password: "ana-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, models.RoleCustomer, customer.Role)
	assert.NotEqual(t, "ana-secret", customer.Password, "password must be stored hashed")

	_, err = f.erp.RegisterCustomer(ctx, erp.RegisterCustomerRequest{
		Name:     "Ana Again",
		Email:    "ana@lavacar.test",
		Password: "other-secret",
	})
	assert.ErrorIs(t, err, customerctl.ErrEmailExists)
}

func TestRegisterCustomerWithPhones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer, err := f.erp.RegisterCustomer(ctx, erp.RegisterCustomerRequest{
		Name:     "Bruno",
		Email:    "bruno@lavacar.test",
		Password: "bruno-secret",
		Phones: []erp.RegisterPhone{
			{Type: models.PhoneTypeMobile, Number: brgen.Phone(), IsWhatsapp: true},
			{Type: models.PhoneTypeHome, Number: brgen.Phone()},
		},
	})
	require.NoError(t, err)

	phones, err := f.phones.ListByUser(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, phones, 2)
	for _, phone := range phones {
		assert.Equal(t, customer.ID, phone.UserID)
		assert.Equal(t, models.RoleCustomer, phone.UserRole)
	}

	// an invalid phone rejects the whole registration
	_, err = f.erp.RegisterCustomer(ctx, erp.RegisterCustomerRequest{
		Name:     "Carla",
		Email:    "carla@lavacar.test",
		Password: "carla-secret",
		Phones: []erp.RegisterPhone{
			{Type: models.PhoneTypeMobile, Number: "not-a-number"},
		},
	})
	require.Error(t, err)

	customers, err := f.erp.ListCustomers(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Len(t, customers, 3, "rejected registration must not create the account")
}

func TestGetMe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	me, err := f.erp.GetMe(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, me.Role)
	assert.Equal(t, f.admin.Email, me.Email)

	me, err = f.erp.GetMe(ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, me.Role)

	_, err = f.erp.GetMe(ctx, "ghost")
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestGetCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.erp.GetCustomer(ctx, f.customer.ID, f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, f.customer.Email, got.Email)

	_, err = f.erp.GetCustomer(ctx, f.customer.ID, f.other.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	got, err = f.erp.GetCustomer(ctx, f.admin.ID, f.other.ID)
	require.NoError(t, err)
	assert.Equal(t, f.other.Email, got.Email)

	_, err = f.erp.GetCustomer(ctx, f.admin.ID, "ghost")
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestListCustomers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customers, err := f.erp.ListCustomers(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	_, err = f.erp.ListCustomers(ctx, f.customer.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)
}

func TestPhoneLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone, err := f.erp.CreatePhone(ctx, erp.CreatePhoneRequest{
		CurrentUserID: f.customer.ID,
		UserID:        f.customer.ID,
		UserRole:      models.RoleCustomer,
		Type:          models.PhoneTypeMobile,
		Number:        brgen.Phone(),
		IsWhatsapp:    true,
	})
	require.NoError(t, err)

	// customers cannot attach phones to someone else
	_, err = f.erp.CreatePhone(ctx, erp.CreatePhoneRequest{
		CurrentUserID: f.customer.ID,
		UserID:        f.other.ID,
		UserRole:      models.RoleCustomer,
		Type:          models.PhoneTypeMobile,
		Number:        brgen.Phone(),
	})
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	// admins manage customer phones
	updated, err := f.erp.EditPhone(ctx, erp.EditPhoneRequest{
		CurrentUserID: f.admin.ID,
		PhoneID:       phone.ID,
		Type:          models.PhoneTypeWork,
		Number:        phone.Number,
		IsWhatsapp:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhoneTypeWork, updated.Type)

	// but not phones of other admins
	adminPhone, err := f.erp.CreatePhone(ctx, erp.CreatePhoneRequest{
		CurrentUserID: f.admin.ID,
		UserID:        f.admin.ID,
		UserRole:      models.RoleAdmin,
		Type:          models.PhoneTypeMobile,
		Number:        brgen.Phone(),
	})
	require.NoError(t, err)

	err = f.erp.DeletePhone(ctx, f.customer.ID, adminPhone.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	require.NoError(t, f.erp.DeletePhone(ctx, f.customer.ID, phone.ID))

	err = f.erp.DeletePhone(ctx, f.customer.ID, phone.ID)
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestCreateCustomerVehicle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vehicle := f.createVehicle(t)
	assert.Equal(t, f.customer.ID, vehicle.CustomerID)

	// customers cannot register vehicles on another account
	_, err := f.erp.CreateCustomerVehicle(ctx, erp.CreateCustomerVehicleRequest{
		CurrentUserID: f.customer.ID,
		CustomerID:    f.other.ID,
		Type:          models.VehicleTypeCar,
		Plate:         brgen.Plate(),
		Model:         "VW Gol",
		Year:          "2019",
	})
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	// invalid plate fails validation before any check
	_, err = f.erp.CreateCustomerVehicle(ctx, erp.CreateCustomerVehicleRequest{
		CurrentUserID: f.customer.ID,
		CustomerID:    f.customer.ID,
		Type:          models.VehicleTypeCar,
		Plate:         "NOT-A-PLATE",
		Model:         "VW Gol",
		Year:          "2019",
	})
	assert.Error(t, err)

	vehicles, err := f.erp.ListCustomerVehicles(ctx, f.customer.ID, f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)

	_, err = f.erp.ListCustomerVehicles(ctx, f.other.ID, f.customer.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)
}

func TestCreateVehicleBreakdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vehicle := f.createVehicle(t)

	attachment, err := f.erp.UploadAttachment(ctx, erp.UploadAttachmentRequest{
		CurrentUserID: f.customer.ID,
		Title:         "engine photo",
		URL:           "https://files.lavacar.test/engine.jpg",
	})
	require.NoError(t, err)

	breakdown, err := f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   "engine stalls at every red light and smells of fuel",
		AttachmentIDs: []string{attachment.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, f.customer.ID, breakdown.OwnerID)
	require.Len(t, breakdown.Attachments, 1)
	assert.Equal(t, attachment.ID, breakdown.Attachments[0].AttachmentID)

	// the created event notified the vehicle's owner
	inbox, err := f.inbox.ListByRecipient(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Contains(t, inbox[0].Title, "Fiat Argo")
	assert.Contains(t, inbox[0].Content, "engine stalls")

	// other customers cannot file against this vehicle
	_, err = f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.other.ID,
		VehicleID:     vehicle.ID,
		Description:   "this is not my car but I dislike it",
	})
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	// referencing a missing attachment fails
	_, err = f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   "another breakdown with a bad attachment reference",
		AttachmentIDs: []string{"missing"},
	})
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)

	_, err = f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     "ghost",
		Description:   "breakdown on a vehicle that does not exist",
	})
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestCreateVehicleBreakdownNotificationExcerpt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vehicle := f.createVehicle(t)

	longDescription := strings.Repeat("the engine knocks badly ", 10)

	_, err := f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   longDescription,
	})
	require.NoError(t, err)

	inbox, err := f.inbox.ListByRecipient(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	assert.True(t, strings.HasSuffix(inbox[0].Content, "..."))
	assert.LessOrEqual(t, len(inbox[0].Content), 123)
}

func TestBreakdownNotificationHandlesAccentedText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vehicle, err := f.erp.CreateCustomerVehicle(ctx, erp.CreateCustomerVehicleRequest{
		CurrentUserID: f.customer.ID,
		CustomerID:    f.customer.ID,
		Type:          models.VehicleTypeCar,
		Plate:         brgen.MercosulPlate(),
		Model:         strings.Repeat("Citroën Aircross Automático ", 3),
		Year:          "2019",
	})
	require.NoError(t, err)

	_, err = f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   strings.Repeat("o câmbio está travado e não sai da terceira marcha ", 5),
	})
	require.NoError(t, err)

	inbox, err := f.inbox.ListByRecipient(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	assert.True(t, utf8.ValidString(inbox[0].Title), "truncation must not split a rune")
	assert.True(t, utf8.ValidString(inbox[0].Content), "truncation must not split a rune")
	assert.True(t, strings.HasSuffix(inbox[0].Title, "..."))
	assert.Len(t, []rune(inbox[0].Title), len("New breakdown report for ")+40+3)
	assert.True(t, strings.HasSuffix(inbox[0].Content, "..."))
	assert.LessOrEqual(t, len([]rune(inbox[0].Content)), 123)
}

func TestListVehicleBreakdowns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vehicle := f.createVehicle(t)

	first, err := f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   "brakes squeal loudly on the morning commute",
	})
	require.NoError(t, err)

	second, err := f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   "coolant warning light stays on after refill",
	})
	require.NoError(t, err)

	breakdowns, err := f.erp.ListVehicleBreakdowns(ctx, f.customer.ID, vehicle.ID)
	require.NoError(t, err)
	require.Len(t, breakdowns, 2)
	assert.Equal(t, first.ID, breakdowns[0].ID)
	assert.Equal(t, second.ID, breakdowns[1].ID)

	breakdowns, err = f.erp.ListVehicleBreakdowns(ctx, f.admin.ID, vehicle.ID)
	require.NoError(t, err)
	assert.Len(t, breakdowns, 2)

	// only the vehicle's owner or an admin may read its reports
	_, err = f.erp.ListVehicleBreakdowns(ctx, f.other.ID, vehicle.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	_, err = f.erp.ListVehicleBreakdowns(ctx, f.customer.ID, "ghost")
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestDeleteVehicleBreakdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vehicle := f.createVehicle(t)

	breakdown, err := f.erp.CreateVehicleBreakdown(ctx, erp.CreateVehicleBreakdownRequest{
		CurrentUserID: f.customer.ID,
		VehicleID:     vehicle.ID,
		Description:   "gearbox grinds when shifting into third",
	})
	require.NoError(t, err)

	// customers may file reports but not remove them
	err = f.erp.DeleteVehicleBreakdown(ctx, f.customer.ID, breakdown.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	require.NoError(t, f.erp.DeleteVehicleBreakdown(ctx, f.admin.ID, breakdown.ID))

	err = f.erp.DeleteVehicleBreakdown(ctx, f.admin.ID, breakdown.ID)
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestNotificationReadFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sent, err := f.notifications.SendChecked(ctx, f.admin.ID, notificationsvc.SendRequest{
		RecipientID:   f.customer.ID,
		RecipientRole: models.RoleCustomer,
		Title:         "Your car is ready",
		Content:       "Pick it up before 18:00.",
	})
	require.NoError(t, err)
	assert.Nil(t, sent.ReadAt)

	// only the recipient may read it
	_, err = f.notifications.Read(ctx, f.admin.ID, sent.ID)
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	read, err := f.notifications.Read(ctx, f.customer.ID, sent.ID)
	require.NoError(t, err)
	assert.NotNil(t, read.ReadAt)

	_, err = f.notifications.Read(ctx, f.customer.ID, "ghost")
	assert.ErrorIs(t, err, policy.ErrResourceNotFound)
}

func TestNotificationSendCheckedDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// customers cannot notify other customers
	_, err := f.notifications.SendChecked(ctx, f.customer.ID, notificationsvc.SendRequest{
		RecipientID:   f.other.ID,
		RecipientRole: models.RoleCustomer,
		Title:         "spam",
		Content:       "buy my wax",
	})
	assert.ErrorIs(t, err, policy.ErrNotAllowed)

	// admins cannot notify other admins
	_, err = f.notifications.SendChecked(ctx, f.admin.ID, notificationsvc.SendRequest{
		RecipientID:   "a2",
		RecipientRole: models.RoleAdmin,
		Title:         "hello",
		Content:       "admin to admin",
	})
	assert.ErrorIs(t, err, policy.ErrNotAllowed)
}
