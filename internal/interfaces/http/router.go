package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/logistics"
	"github.com/tu-usuario/billing-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	BusinessUC    *usecase.BusinessUseCase
	MemberUC      *usecase.MemberUseCase
	ClientUC      *usecase.ClientUseCase
	ItemUC        *usecase.ItemUseCase
	SearchUC      *usecase.GlobalSearchUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PDFUC         *billing.PDFUseCase
	DeliveryUC    *logistics.DeliveryUseCase
	Users         userSource
	Blacklist     auth.TokenBlacklist // nil = logout sin revocación
	JWTSecret     string
}

// Router registra las rutas de la API. Tres niveles de protección:
//
//	público     → register/login
//	autenticado → sesión válida (perfil, negocios propios, monedas)
//	negocio     → además header X-Business-ID con membresía; las escrituras
//	              exigen la capacidad correspondiente al rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas autenticadas (Bearer Token + usuario cargado con membresías)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret, deps.Blacklist),
		WithCapabilities(deps.Users),
	)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/me", authHandler.UpdateMe)

	businessHandler := NewBusinessHandler(deps.BusinessUC)
	protected.Get("/currencies", businessHandler.Currencies)
	protected.Post("/businesses", businessHandler.Create)
	protected.Get("/businesses", businessHandler.ListMine)
	protected.Get("/businesses/format-preview", businessHandler.FormatPreview)
	protected.Post("/businesses/format-preview", businessHandler.FormatPreview)

	// Rutas de negocio (header X-Business-ID con membresía)
	biz := protected.Group("/", RequireBusiness())

	biz.Get("/businesses/current", businessHandler.Get)
	biz.Put("/businesses/current", RequireCapability(CanManageSettings), businessHandler.Update)

	// Equipo (requiere canManageSettings)
	memberHandler := NewMemberHandler(deps.MemberUC)
	members := biz.Group("/businesses/members", RequireCapability(CanManageSettings))
	members.Get("/", memberHandler.List)
	members.Post("/", memberHandler.Add)
	members.Put("/:id", memberHandler.UpdateRole)
	members.Delete("/:id", memberHandler.Remove)

	// Clientes (lectura: cualquier integrante; escritura: canManage)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := biz.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", RequireCapability(CanManage), clientHandler.Create)
	clients.Put("/:id", RequireCapability(CanManage), clientHandler.Update)
	clients.Delete("/:id", RequireCapability(CanDelete), clientHandler.Delete)

	// Items (lectura: cualquier integrante; escritura: canManage)
	itemHandler := NewItemHandler(deps.ItemUC)
	items := biz.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", RequireCapability(CanManage), itemHandler.Create)
	items.Put("/:id", RequireCapability(CanManage), itemHandler.Update)
	items.Delete("/:id", RequireCapability(CanDelete), itemHandler.Delete)

	// Facturas (lectura: canViewFinancials; emisión y estado: canManage)
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceUC, deps.PDFUC)
	invoices := biz.Group("/invoices")
	invoices.Get("/", RequireCapability(CanViewFinancials), invoiceHandler.List)
	invoices.Get("/:id", RequireCapability(CanViewFinancials), invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", RequireCapability(CanViewFinancials), invoiceHandler.PDF)
	invoices.Post("/", RequireCapability(CanManage), invoiceHandler.Create)
	invoices.Put("/:id/status", RequireCapability(CanManage), invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", RequireCapability(CanDelete), invoiceHandler.Delete)

	// Remisiones (requiere canManageLogistics; es todo lo que ve el rol deliver)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries := biz.Group("/delivery-notes", RequireCapability(CanManageLogistics))
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Put("/:id/delivered", deliveryHandler.MarkDelivered)
	deliveries.Delete("/:id", deliveryHandler.Delete)

	// Búsqueda global (cualquier integrante del negocio)
	searchHandler := NewSearchHandler(deps.SearchUC)
	biz.Get("/search", searchHandler.Search)
}
